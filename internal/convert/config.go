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
	"strings"

	// third-party libraries.
	"github.com/pkg/errors"

	// this project.
	"github.com/vanus-labs/ies2tsv/internal/primitive"
)

const (
	DefaultInputExt    = ".ies"
	DefaultOutputExt   = ".tsv"
	DefaultConcurrency = 4
)

type Config struct {
	InputExt    string `yaml:"input_ext"`
	OutputExt   string `yaml:"output_ext"`
	Concurrency int    `yaml:"concurrency"`
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"`
}

func DefaultConfig() Config {
	return Config{
		InputExt:    DefaultInputExt,
		OutputExt:   DefaultOutputExt,
		Concurrency: DefaultConcurrency,
	}
}

func (c *Config) Validate() error {
	if !strings.HasPrefix(c.InputExt, ".") || len(c.InputExt) < 2 {
		return errors.Errorf("invalid input_ext %q: must start with a dot", c.InputExt)
	}
	if !strings.HasPrefix(c.OutputExt, ".") || len(c.OutputExt) < 2 {
		return errors.Errorf("invalid output_ext %q: must start with a dot", c.OutputExt)
	}
	if strings.EqualFold(c.InputExt, c.OutputExt) {
		return errors.Errorf("input_ext and output_ext are both %q", c.InputExt)
	}
	if c.Concurrency < 1 {
		return errors.Errorf("invalid concurrency %d: must be at least 1", c.Concurrency)
	}
	return nil
}

// InitConfig loads filename over the default configuration. An empty
// filename yields the defaults.
func InitConfig(filename string) (*Config, error) {
	c := DefaultConfig()
	if filename != "" {
		if err := primitive.LoadConfig(filename, &c); err != nil {
			return nil, errors.Wrapf(err, "load configuration %s", filename)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
