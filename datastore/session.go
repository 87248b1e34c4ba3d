// SPDX-License-Identifier: MPL-2.0

package datastore

import (
	"context"
	"fmt"

	"github.com/danos/mgmterror"
)

// Datastore identifies which store a query targets, mirroring the
// datastore names an extension completion xpath may be prefixed with
// (spec.md 4.A, "<datastore>:<xpath>").
type Datastore int

const (
	Running Datastore = iota
	Operational
	Startup
	Candidate
	FactoryDefault
)

func (d Datastore) String() string {
	switch d {
	case Running:
		return "running"
	case Operational:
		return "operational"
	case Startup:
		return "startup"
	case Candidate:
		return "candidate"
	case FactoryDefault:
		return "factory-default"
	default:
		return "unknown"
	}
}

// ParseDatastore maps an extension completion xpath's leading
// "<datastore>:" token to a Datastore value. ok is false for an
// unrecognized name, in which case the caller should treat the whole
// string as a plain xpath with no datastore override.
func ParseDatastore(name string) (Datastore, bool) {
	switch name {
	case "running":
		return Running, true
	case "operational":
		return Operational, true
	case "startup":
		return Startup, true
	case "candidate":
		return Candidate, true
	case "factory-default":
		return FactoryDefault, true
	default:
		return 0, false
	}
}

// Session is a live connection to a schema-bearing backend, released
// with Close. Every query names its datastore, so a session is never
// switched from one datastore to another.
type Session interface {
	// GetData fetches the subtree rooted at xpath, descending at most
	// maxDepth levels (0 means unlimited), from the given datastore.
	// A non-existent path is not an error: it returns (nil, nil).
	GetData(ctx context.Context, ds Datastore, xpath string, maxDepth int) (DataNode, error)

	// Exists is a cheap existence check: does xpath resolve to at least
	// one instance in ds. The completion renderer's materialization
	// check uses GetData instead, since it needs the stored values.
	Exists(ctx context.Context, ds Datastore, xpath string) (bool, error)

	Close() error
}

// NewUnavailableError reports that a datastore session could not be
// reached, distinct from the query simply returning no data.
func NewUnavailableError(ds Datastore, cause error) error {
	e := mgmterror.NewOperationFailedApplicationError()
	e.Message = fmt.Sprintf("datastore %s unavailable: %v", ds, cause)
	return e
}
