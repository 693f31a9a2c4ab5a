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
	// standard libraries.
	"os"

	// third-party libraries.
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	// this project.
	"github.com/vanus-labs/ies2tsv/internal/ies"
)

type fileDetail struct {
	File    string       `json:"File"`
	Header  ies.Header   `json:"Header"`
	Columns []ies.Column `json:"Columns"`
}

func newDescribeCommand(g *GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "show the header and columns of an IES file",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = g.wrap(func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "read %s", args[0])
		}
		h, cols, err := ies.Inspect(buf)
		if err != nil {
			return errors.WithMessagef(err, "describe %s", args[0])
		}

		d := fileDetail{
			File:    args[0],
			Header:  h,
			Columns: cols.Columns(),
		}

		w := cmd.OutOrStdout()
		if IsFormatJSON(cmd) {
			return printJSON(w, d)
		}

		ht := newTable(w)
		ht.AppendHeader(table.Row{"Table", "Rows", "Columns", "Numeric", "String", "Size"})
		ht.AppendRow(table.Row{h.TableName, h.RowCount, h.ColumnCount, h.NumericCount, h.StringCount, h.FileSize})
		ht.Render()

		ct := newTable(w)
		ct.AppendHeader(table.Row{"Index", "Name", "Kind", "Slot"})
		for _, c := range d.Columns {
			ct.AppendRow(table.Row{c.Index, c.Name, c.Kind, c.Slot})
		}
		ct.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
		})
		ct.Render()
		return nil
	})
	return cmd
}
