// SPDX-License-Identifier: MPL-2.0

// Command pline drives the schema-directed parser and completion
// renderer from a command line, the way an interactive CLI shell would
// call into them on every keystroke: parse the tokens typed so far,
// then render either help text or the completion candidates valid at
// the point the input stopped matching. The parsed expressions are not
// printed.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sdcio/pline/complete"
	"github.com/sdcio/pline/datastore"
	"github.com/sdcio/pline/pline"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var optsFile string
	var datastoreName string
	var help bool
	var existingOnly bool

	root := &cobra.Command{
		Use:   "pline [flags] -- token [token...]",
		Short: "parse a command line against a YANG schema and render its completions",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &pline.Opts{}
			pline.OptsInit(opts)
			if optsFile != "" {
				if err := pline.OptsParseFile(optsFile, opts); err != nil {
					return err
				}
			}

			ds, ok := datastore.ParseDatastore(datastoreName)
			if !ok {
				return fmt.Errorf("pline: unrecognized datastore %q", datastoreName)
			}

			ctx := context.Background()
			pl, err := pline.Parse(ctx, demoProvider{}, args, opts)
			if err != nil {
				return err
			}

			if pl.Invalid {
				log.Warn("input does not fully match the schema; showing completions at the point parsing stopped")
			}

			sess := datastore.NewFakeSession()
			return complete.Print(ctx, os.Stdout, sess, ds, pl, help, complete.AllPats, existingOnly)
		},
	}

	root.Flags().StringVar(&optsFile, "opts-file", "", "INI-style file of renderer options to merge over the defaults")
	root.Flags().StringVar(&datastoreName, "datastore", "running", "datastore to evaluate existing-data completions against")
	root.Flags().BoolVar(&help, "help-mode", false, "render descriptive help text instead of bare completion candidates")
	root.Flags().BoolVar(&existingOnly, "existing-only", false, "only show completions that already materialize in the datastore")

	return root
}
