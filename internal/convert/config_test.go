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
	"os"
	"path/filepath"
	"testing"

	// third-party libraries.
	. "github.com/smartystreets/goconvey/convey"
)

func TestInitConfig(t *testing.T) {
	Convey("converter configuration", t, func() {
		t.Setenv("IES_TEST_METRICS", "/tmp/ies2tsv.prom")

		path := filepath.Join(t.TempDir(), "ies2tsv.yaml")
		err := os.WriteFile(path, []byte(`input_ext: .IES
output_ext: .txt
concurrency: 8
log_level: debug
metrics_file: ${IES_TEST_METRICS}
`), 0o600)
		So(err, ShouldBeNil)

		cfg, err := InitConfig(path)
		So(err, ShouldBeNil)
		So(cfg.InputExt, ShouldEqual, ".IES")
		So(cfg.OutputExt, ShouldEqual, ".txt")
		So(cfg.Concurrency, ShouldEqual, 8)
		So(cfg.LogLevel, ShouldEqual, "debug")
		So(cfg.MetricsFile, ShouldEqual, "/tmp/ies2tsv.prom")
	})

	Convey("missing keys keep defaults", t, func() {
		path := filepath.Join(t.TempDir(), "ies2tsv.yaml")
		So(os.WriteFile(path, []byte("concurrency: 2\n"), 0o600), ShouldBeNil)

		cfg, err := InitConfig(path)
		So(err, ShouldBeNil)
		So(cfg.InputExt, ShouldEqual, DefaultInputExt)
		So(cfg.OutputExt, ShouldEqual, DefaultOutputExt)
		So(cfg.Concurrency, ShouldEqual, 2)
	})

	Convey("empty filename yields defaults", t, func() {
		cfg, err := InitConfig("")
		So(err, ShouldBeNil)
		So(*cfg, ShouldResemble, DefaultConfig())
	})

	Convey("unreadable configuration", t, func() {
		_, err := InitConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		So(err, ShouldNotBeNil)

		path := filepath.Join(t.TempDir(), "bad.yaml")
		So(os.WriteFile(path, []byte("concurrency: [1\n"), 0o600), ShouldBeNil)
		_, err = InitConfig(path)
		So(err, ShouldNotBeNil)
	})

	Convey("config validation", t, func() {
		cfg := DefaultConfig()
		cfg.InputExt = "ies"
		So(cfg.Validate(), ShouldNotBeNil)

		cfg = DefaultConfig()
		cfg.OutputExt = "."
		So(cfg.Validate(), ShouldNotBeNil)

		cfg = DefaultConfig()
		cfg.OutputExt = ".IES"
		So(cfg.Validate(), ShouldNotBeNil)

		cfg = DefaultConfig()
		cfg.Concurrency = 0
		So(cfg.Validate(), ShouldNotBeNil)

		cfg = DefaultConfig()
		So(cfg.Validate(), ShouldBeNil)
	})
}
