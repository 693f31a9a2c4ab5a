// Copyright 2023 Linkall Inc.
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

package command

import (
	// third-party libraries.
	"github.com/spf13/cobra"
)

const (
	cliName        = "ies2tsv"
	cliDescription = "convert IES table files to tab separated text"
)

func NewRootCommand() *cobra.Command {
	g := &GlobalFlags{}
	cmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}
	g.register(cmd)

	cmd.AddCommand(newFileCommand(g))
	cmd.AddCommand(newBatchCommand(g))
	cmd.AddCommand(newDescribeCommand(g))
	return cmd
}
