// Copyright (c) 2017,2019, AT&T Intellectual Property. All rights reserved
//
// Copyright (c) 2016-2017 by Brocade Communications Systems, Inc.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"github.com/danos/mgmterror"
	"github.com/danos/utils/pathutil"
)

const (
	msgMissingKey  = "List entry is missing key"
	msgInvalidPath = "Path is invalid"
	msgNoModules   = "No schema modules loaded"
)

// NewMissingKeyError reports a mandatory list key that was neither typed
// nor covered by an extension default (spec.md 4.C.2, named-key mode).
func NewMissingKeyError(path []string) error {
	e := mgmterror.NewOperationFailedApplicationError()
	e.Path = pathutil.Pathstr(path)
	e.Message = msgMissingKey
	return e
}

// NewInvalidPathError reports a schema-access failure unrelated to the
// tokens being parsed - e.g. a nil root handed to the parser.
func NewInvalidPathError(path []string) error {
	e := mgmterror.NewOperationFailedApplicationError()
	e.Path = pathutil.Pathstr(path)
	e.Message = msgInvalidPath
	return e
}

// NewNoModulesError reports that no schema modules were supplied at all,
// distinct from every module rejecting the input (spec.md 4.C.1).
func NewNoModulesError() error {
	e := mgmterror.NewOperationFailedApplicationError()
	e.Message = msgNoModules
	return e
}
