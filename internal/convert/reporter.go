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

//go:generate mockgen -source=reporter.go -destination=mock_reporter.go -package=convert

package convert

// Result describes one converted file.
type Result struct {
	Source  string `json:"Source"`
	Output  string `json:"Output"`
	Rows    int    `json:"Rows"`
	Columns int    `json:"Columns"`
	Bytes   int    `json:"Bytes"`
}

type Failure struct {
	Source string `json:"Source"`
	Err    error  `json:"-"`
}

// Report summarizes a batch conversion.
type Report struct {
	Directory string    `json:"Directory"`
	Total     int       `json:"Total"`
	Converted int       `json:"Converted"`
	Rows      int       `json:"Rows"`
	Failures  []Failure `json:"Failures,omitempty"`
}

func (r *Report) Skipped() int {
	return len(r.Failures)
}

// Reporter receives per-file outcomes of a batch. Methods may be called
// from several goroutines at once.
type Reporter interface {
	OnConverted(res Result)
	OnSkipped(src string, err error)
}

type nopReporter struct{}

func (nopReporter) OnConverted(Result)      {}
func (nopReporter) OnSkipped(string, error) {}
