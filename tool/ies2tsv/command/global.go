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
	"strings"

	// third-party libraries.
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	// first-party libraries.
	"github.com/vanus-labs/ies2tsv/observability/log"
	"github.com/vanus-labs/ies2tsv/observability/metrics"

	// this project.
	"github.com/vanus-labs/ies2tsv/internal/convert"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"

	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagMetricsFile = "metrics-file"
	flagFormat      = "format"
)

type GlobalFlags struct {
	ConfigFile  string
	LogLevel    string
	MetricsFile string
	Format      string

	cfg      *convert.Config
	registry *prometheus.Registry
}

func (g *GlobalFlags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&g.ConfigFile, flagConfig, "", "configuration file (yaml)")
	fs.StringVar(&g.LogLevel, flagLogLevel, "", "log level: debug, info, warn or error")
	fs.StringVar(&g.MetricsFile, flagMetricsFile, "", "write conversion metrics to this file")
	fs.StringVar(&g.Format, flagFormat, FormatTable, "output format: table or json")
}

// setup loads the configuration and applies flags over it.
func (g *GlobalFlags) setup(cmd *cobra.Command) error {
	cfg, err := convert.InitConfig(g.ConfigFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed(flagLogLevel) {
		cfg.LogLevel = g.LogLevel
	}
	if cmd.Flags().Changed(flagMetricsFile) {
		cfg.MetricsFile = g.MetricsFile
	}
	log.SetLogLevel(cfg.LogLevel)
	g.cfg = cfg
	if cfg.MetricsFile != "" {
		g.registry = metrics.NewRegistry()
	}
	return nil
}

func (g *GlobalFlags) teardown(cmd *cobra.Command) error {
	if g.registry == nil {
		return nil
	}
	if err := metrics.WriteToTextfile(g.cfg.MetricsFile, g.registry); err != nil {
		log.Warning(cmd.Context(), "write metrics failed", map[string]interface{}{
			log.KeyFile:  g.cfg.MetricsFile,
			log.KeyError: err,
		})
		return err
	}
	return nil
}

// wrap writes metrics after run, whatever its outcome.
func (g *GlobalFlags) wrap(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if terr := g.teardown(cmd); err == nil {
			err = terr
		}
		return err
	}
}

func (g *GlobalFlags) config() convert.Config {
	if g.cfg == nil {
		return convert.DefaultConfig()
	}
	return *g.cfg
}

func IsFormatJSON(cmd *cobra.Command) bool {
	v, err := cmd.Root().PersistentFlags().GetString(flagFormat)
	if err != nil {
		return false
	}
	return strings.ToLower(v) == FormatJSON
}
