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

package convert

import (
	// standard libraries.
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	// third-party libraries.
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	// first-party libraries.
	"github.com/vanus-labs/ies2tsv/observability/log"
	"github.com/vanus-labs/ies2tsv/observability/metrics"

	// this project.
	"github.com/vanus-labs/ies2tsv/internal/ies"
)

type options struct {
	reporter Reporter
}

type Option func(*options)

func WithReporter(r Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// Converter turns IES files into TSV files.
type Converter struct {
	cfg      Config
	reporter Reporter
}

func NewConverter(cfg Config, opts ...Option) *Converter {
	o := options{
		reporter: nopReporter{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{
		cfg:      cfg,
		reporter: o.reporter,
	}
}

// ConvertFile converts src into dst. An empty dst is derived from src by
// replacing its extension. Nothing is written unless src decodes cleanly.
func (c *Converter) ConvertFile(ctx context.Context, src, dst string) (Result, error) {
	if dst == "" {
		dst = OutputPath(src, c.cfg.OutputExt)
	}
	res, err := c.convert(ctx, src, dst, metrics.LabelValueModeFile)
	if err != nil {
		metrics.FileCounterVec.WithLabelValues(metrics.LabelValueModeFile, metrics.LabelValueSkipped).Inc()
		return Result{}, err
	}
	metrics.FileCounterVec.WithLabelValues(metrics.LabelValueModeFile, metrics.LabelValueConverted).Inc()
	return res, nil
}

// ConvertDir converts every file of dir carrying the input extension,
// without descending into subdirectories. A file that fails to convert is
// reported and skipped; the returned error is only set when the directory
// cannot be listed or ctx is done.
func (c *Converter) ConvertDir(ctx context.Context, dir string) (*Report, error) {
	files, err := c.listDir(dir)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Directory: dir,
		Total:     len(files),
	}

	var (
		converted atomic.Int64
		rows      atomic.Int64
		mu        sync.Mutex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)
	for _, src := range files {
		src := src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := c.convert(gctx, src, OutputPath(src, c.cfg.OutputExt), metrics.LabelValueModeBatch)
			if err != nil {
				metrics.FileCounterVec.WithLabelValues(metrics.LabelValueModeBatch, metrics.LabelValueSkipped).Inc()
				log.Warning(gctx, "skip IES file", map[string]interface{}{
					log.KeyFile:  src,
					log.KeyError: err,
				})
				mu.Lock()
				report.Failures = append(report.Failures, Failure{Source: src, Err: err})
				mu.Unlock()
				c.reporter.OnSkipped(src, err)
				return nil
			}

			metrics.FileCounterVec.WithLabelValues(metrics.LabelValueModeBatch, metrics.LabelValueConverted).Inc()
			converted.Inc()
			rows.Add(int64(res.Rows))
			c.reporter.OnConverted(res)
			return nil
		})
	}
	err = g.Wait()

	report.Converted = int(converted.Load())
	report.Rows = int(rows.Load())
	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].Source < report.Failures[j].Source
	})

	log.Info(ctx, "batch conversion finished", map[string]interface{}{
		log.KeyDirectory: dir,
		"total":          report.Total,
		"converted":      report.Converted,
		"skipped":        report.Skipped(),
	})

	if err != nil {
		return report, errors.Wrapf(err, "convert directory %s", dir)
	}
	return report, nil
}

func (c *Converter) listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), c.cfg.InputExt) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

func (c *Converter) convert(ctx context.Context, src, dst, mode string) (Result, error) {
	buf, err := readFile(src)
	if err != nil {
		return Result{}, errors.Wrapf(err, "read %s", src)
	}
	metrics.ReadThroughputCounterVec.WithLabelValues(mode).Add(float64(len(buf)))

	start := time.Now()
	tbl, err := ies.Decode(buf)
	metrics.DecodeCostSecond.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	if err != nil {
		return Result{}, errors.WithMessagef(err, "decode %s", src)
	}

	data := EncodeTSV(tbl)
	if err = writeFile(dst, data); err != nil {
		return Result{}, errors.Wrapf(err, "write %s", dst)
	}
	metrics.RowCounterVec.WithLabelValues(mode).Add(float64(tbl.Len()))

	log.Debug(ctx, "converted IES file", map[string]interface{}{
		log.KeyFile:     src,
		log.KeyOutput:   dst,
		log.KeyRows:     tbl.Len(),
		log.KeyColumns:  len(tbl.Header()),
		log.KeyBytes:    len(data),
		log.KeyDuration: time.Since(start),
	})

	return Result{
		Source:  src,
		Output:  dst,
		Rows:    tbl.Len(),
		Columns: len(tbl.Header()),
		Bytes:   len(data),
	}, nil
}
