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
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	// this project.
	"github.com/vanus-labs/ies2tsv/internal/convert"
)

func newFileCommand(g *GlobalFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "file [-o OUTPUT] FILE",
		Short: "convert a single IES file",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = g.wrap(func(cmd *cobra.Command, args []string) error {
		c := convert.NewConverter(g.config())
		res, err := c.ConvertFile(cmd.Context(), args[0], output)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if IsFormatJSON(cmd) {
			return printJSON(w, res)
		}
		_, _ = color.New(color.FgGreen).Fprintf(w, "converted %s -> %s\n", res.Source, res.Output)
		t := newTable(w)
		t.AppendHeader(table.Row{"Rows", "Columns", "Bytes"})
		t.AppendRow(table.Row{res.Rows, res.Columns, res.Bytes})
		t.Render()
		return nil
	})
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path, defaults to FILE with its extension replaced")
	return cmd
}
