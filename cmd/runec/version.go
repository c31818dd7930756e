// Copyright 2016-2026, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/util/cmdutil"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "0.1.0-dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print runec's version number",
		Args:  cobra.NoArgs,
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			v, err := semver.ParseTolerant(version)
			if err != nil {
				return errors.Wrapf(err, "malformed version '%v'", version)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "runec version %v (bytecode format v%v)\n", v, bytecode.FormatVersion)
			return err
		}),
	}
}
