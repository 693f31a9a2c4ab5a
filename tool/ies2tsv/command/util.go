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
	"encoding/json"
	"io"

	// third-party libraries.
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// PrintError reports err on the error output of cmd.
func PrintError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	if IsFormatJSON(cmd) {
		data, _ := json.Marshal(map[string]string{"ERROR": err.Error()})
		_, _ = color.New(color.FgRed).Fprintln(w, string(data))
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"ERROR"})
	t.AppendRow(table.Row{err.Error()})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, VAlign: text.VAlignMiddle, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})
	t.Render()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	return t
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
