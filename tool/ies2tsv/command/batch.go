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
	"io"
	"sync"

	// third-party libraries.
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	// this project.
	"github.com/vanus-labs/ies2tsv/internal/convert"
)

const flagConcurrency = "concurrency"

// consoleReporter prints one line per file as the batch progresses.
type consoleReporter struct {
	mu    sync.Mutex
	w     io.Writer
	quiet bool
}

// Make sure consoleReporter implements convert.Reporter.
var _ convert.Reporter = (*consoleReporter)(nil)

func (r *consoleReporter) OnConverted(res convert.Result) {
	if r.quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = color.New(color.FgGreen).Fprintf(r.w, "converted %s -> %s (%d rows)\n", res.Source, res.Output, res.Rows)
}

func (r *consoleReporter) OnSkipped(src string, err error) {
	if r.quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = color.New(color.FgYellow).Fprintf(r.w, "skipped %s: %s\n", src, err)
}

type failureView struct {
	Source string `json:"Source"`
	Reason string `json:"Reason"`
}

type reportView struct {
	Directory string        `json:"Directory"`
	Total     int           `json:"Total"`
	Converted int           `json:"Converted"`
	Skipped   int           `json:"Skipped"`
	Rows      int           `json:"Rows"`
	Failures  []failureView `json:"Failures,omitempty"`
}

func newReportView(r *convert.Report) reportView {
	v := reportView{
		Directory: r.Directory,
		Total:     r.Total,
		Converted: r.Converted,
		Skipped:   r.Skipped(),
		Rows:      r.Rows,
	}
	for _, f := range r.Failures {
		v.Failures = append(v.Failures, failureView{Source: f.Source, Reason: f.Err.Error()})
	}
	return v
}

func newBatchCommand(g *GlobalFlags) *cobra.Command {
	var concurrency int
	cmd := &cobra.Command{
		Use:   "batch [DIR]",
		Short: "convert every IES file of a directory",
		Long: "Convert every IES file directly inside DIR (default: current directory).\n" +
			"Files that fail to decode are reported and skipped.",
		Args: cobra.MaximumNArgs(1),
	}
	cmd.RunE = g.wrap(func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		cfg := g.config()
		if cmd.Flags().Changed(flagConcurrency) {
			cfg.Concurrency = concurrency
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		r := &consoleReporter{w: w, quiet: IsFormatJSON(cmd)}
		report, err := convert.NewConverter(cfg, convert.WithReporter(r)).ConvertDir(cmd.Context(), dir)
		if err != nil {
			return err
		}

		if IsFormatJSON(cmd) {
			if err = printJSON(w, newReportView(report)); err != nil {
				return err
			}
		} else {
			t := newTable(w)
			t.AppendHeader(table.Row{"Directory", "Total", "Converted", "Skipped", "Rows"})
			t.AppendRow(table.Row{report.Directory, report.Total, report.Converted, report.Skipped(), report.Rows})
			t.Render()
		}

		if report.Skipped() > 0 {
			return errors.Errorf("%d of %d files in %s were skipped", report.Skipped(), report.Total, dir)
		}
		return nil
	})
	cmd.Flags().IntVarP(&concurrency, flagConcurrency, "j", convert.DefaultConcurrency, "number of files converted in parallel")
	return cmd
}
