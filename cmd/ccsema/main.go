// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ccsema is a thin harness around the sema package: it loads a JSON
// declaration fixture, runs it through one translation unit, and prints
// diagnostics. It is not part of the declaration-semantics core itself.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/neonkingfr/uccgo/internal/fixtures"
	"github.com/neonkingfr/uccgo/sema"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ccsema <fixture.json>",
		Short: "run a declaration fixture through the declaration-semantics core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return run(args[0])
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading fixture")
	}

	decl, err := fixtures.Decode(data)
	if err != nil {
		return errors.Wrap(err, "decoding fixture")
	}
	log.WithField("file", path).Debug("loaded fixture")

	ctx := sema.NewContext()
	if err := ctx.AnalyzeDeclSpecs(decl.Specs); err != nil {
		return reportFatal(err)
	}
	if err := ctx.AnalyzeDeclarator(decl.Specs, decl.Decl, true); err != nil {
		return reportFatal(err)
	}
	if err := ctx.AnalyzeInitDeclarator(decl.Specs, decl.Decl, false); err != nil {
		return reportFatal(err)
	}

	for _, w := range ctx.Warnings {
		fmt.Fprintln(os.Stderr, w.String())
	}

	out, err := fixtures.Encode(decl)
	if err != nil {
		return errors.Wrap(err, "encoding result")
	}
	fmt.Println(string(out))
	return nil
}

// reportFatal prints a diagnostic and turns it into a generic error so the
// caller can tell "fatal semantic error" apart from an I/O or
// fixture-decoding failure without sema importing an I/O-flavored error type.
func reportFatal(err error) error {
	fmt.Fprintln(os.Stderr, err.Error())
	return errors.New("semantic analysis failed")
}
