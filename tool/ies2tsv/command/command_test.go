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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	// third-party libraries.
	. "github.com/smartystreets/goconvey/convey"

	// this project.
	iestest "github.com/vanus-labs/ies2tsv/internal/ies/testing"
)

func run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	if err != nil {
		PrintError(cmd, err)
	}
	return out.String(), errOut.String(), err
}

func writeFile(dir, name string, buf []byte) string {
	path := filepath.Join(dir, name)
	So(os.WriteFile(path, buf, 0o600), ShouldBeNil)
	return path
}

func truncated() []byte {
	buf := iestest.SampleFile().Bytes()
	return buf[:len(buf)-10]
}

func TestFileCommand(t *testing.T) {
	Convey("convert a single file", t, func() {
		dir := t.TempDir()
		src := writeFile(dir, "sample.ies", iestest.SampleFile().Bytes())

		out, _, err := run("file", src)
		So(err, ShouldBeNil)
		So(out, ShouldContainSubstring, "converted "+src)

		data, err := os.ReadFile(filepath.Join(dir, "sample.tsv"))
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, iestest.SampleTSV)
	})

	Convey("convert to an explicit output", t, func() {
		dir := t.TempDir()
		src := writeFile(dir, "sample.ies", iestest.SampleFile().Bytes())
		dst := filepath.Join(dir, "named.tsv")

		out, _, err := run("--format", "json", "file", "-o", dst, src)
		So(err, ShouldBeNil)

		var res map[string]interface{}
		So(json.Unmarshal([]byte(out), &res), ShouldBeNil)
		So(res["Output"], ShouldEqual, dst)
		So(res["Rows"], ShouldEqual, float64(2))
	})

	Convey("corrupt file fails", t, func() {
		dir := t.TempDir()
		src := writeFile(dir, "bad.ies", truncated())

		_, errOut, err := run("--format", "json", "file", src)
		So(err, ShouldNotBeNil)
		So(errOut, ShouldContainSubstring, `"ERROR"`)
		So(errOut, ShouldContainSubstring, "file_size")
		_, statErr := os.Stat(filepath.Join(dir, "bad.tsv"))
		So(os.IsNotExist(statErr), ShouldBeTrue)
	})

	Convey("wrong arguments", t, func() {
		_, errOut, err := run("file")
		So(err, ShouldNotBeNil)
		So(errOut, ShouldContainSubstring, "ERROR")
	})

	Convey("metrics are written on request", t, func() {
		dir := t.TempDir()
		src := writeFile(dir, "sample.ies", iestest.SampleFile().Bytes())
		prom := filepath.Join(dir, "ies2tsv.prom")

		_, _, err := run("--metrics-file", prom, "file", src)
		So(err, ShouldBeNil)

		data, err := os.ReadFile(prom)
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "ies2tsv_converter_file_count")
	})
}

func TestBatchCommand(t *testing.T) {
	Convey("batch skips the truncated file", t, func() {
		dir := t.TempDir()
		writeFile(dir, "good.ies", iestest.SampleFile().Bytes())
		bad := writeFile(dir, "bad.ies", truncated())

		out, _, err := run("batch", dir)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "1 of 2 files")
		So(out, ShouldContainSubstring, "skipped "+bad)
		So(out, ShouldContainSubstring, "converted ")

		_, statErr := os.Stat(filepath.Join(dir, "good.tsv"))
		So(statErr, ShouldBeNil)
		_, statErr = os.Stat(filepath.Join(dir, "bad.tsv"))
		So(os.IsNotExist(statErr), ShouldBeTrue)
	})

	Convey("batch report in json", t, func() {
		dir := t.TempDir()
		writeFile(dir, "a.ies", iestest.SampleFile().Bytes())
		writeFile(dir, "b.ies", iestest.SampleFile().Bytes())

		out, _, err := run("--format", "json", "batch", "-j", "1", dir)
		So(err, ShouldBeNil)

		var v reportView
		So(json.Unmarshal([]byte(out), &v), ShouldBeNil)
		So(v.Total, ShouldEqual, 2)
		So(v.Converted, ShouldEqual, 2)
		So(v.Skipped, ShouldEqual, 0)
		So(v.Rows, ShouldEqual, 4)
	})

	Convey("configuration file changes the extensions", t, func() {
		dir := t.TempDir()
		writeFile(dir, "a.dat", iestest.SampleFile().Bytes())
		cfg := writeFile(dir, "cfg.yaml", []byte("input_ext: .dat\noutput_ext: .txt\n"))

		_, _, err := run("--config", cfg, "batch", dir)
		So(err, ShouldBeNil)
		_, statErr := os.Stat(filepath.Join(dir, "a.txt"))
		So(statErr, ShouldBeNil)
	})

	Convey("invalid concurrency", t, func() {
		_, _, err := run("batch", "-j", "0", t.TempDir())
		So(err, ShouldNotBeNil)
	})
}

func TestDescribeCommand(t *testing.T) {
	Convey("describe in json", t, func() {
		src := writeFile(t.TempDir(), "sample.ies", iestest.SampleFile().Bytes())

		out, _, err := run("--format", "json", "describe", src)
		So(err, ShouldBeNil)

		var d struct {
			Header struct {
				TableName string
				RowCount  int
			}
			Columns []struct {
				Name  string
				Kind  string
				Index int
			}
		}
		So(json.Unmarshal([]byte(out), &d), ShouldBeNil)
		So(d.Header.TableName, ShouldEqual, "Sample")
		So(d.Header.RowCount, ShouldEqual, 2)
		So(d.Columns, ShouldHaveLength, 2)
		So(d.Columns[1].Name, ShouldEqual, "Name")
		So(d.Columns[1].Kind, ShouldEqual, "string")
	})

	Convey("describe as tables", t, func() {
		src := writeFile(t.TempDir(), "sample.ies", iestest.SampleFile().Bytes())

		out, _, err := run("describe", src)
		So(err, ShouldBeNil)
		So(out, ShouldContainSubstring, "Sample")
		So(out, ShouldContainSubstring, "numeric")
		So(out, ShouldContainSubstring, "Name")
	})
}
