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

package metrics

import (
	// standard libraries.
	"os"
	"path/filepath"
	"testing"

	// third-party libraries.
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("dump converter metrics to a text file", t, func() {
		reg := NewRegistry()

		FileCounterVec.WithLabelValues(LabelValueModeBatch, LabelValueConverted).Inc()
		FileCounterVec.WithLabelValues(LabelValueModeBatch, LabelValueSkipped).Add(2)
		RowCounterVec.WithLabelValues(LabelValueModeBatch).Add(10)
		DecodeCostSecond.WithLabelValues(LabelValueModeBatch).Observe(0.01)

		So(testutil.ToFloat64(FileCounterVec.WithLabelValues(LabelValueModeBatch, LabelValueSkipped)), ShouldEqual, 2)

		path := filepath.Join(t.TempDir(), "ies2tsv.prom")
		So(WriteToTextfile(path, reg), ShouldBeNil)

		data, err := os.ReadFile(path)
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, `ies2tsv_converter_file_count{mode="batch",result="converted"} 1`)
		So(string(data), ShouldContainSubstring, `ies2tsv_converter_row_count{mode="batch"} 10`)
		So(string(data), ShouldContainSubstring, "ies2tsv_converter_decode_cost_second_bucket")
	})
}
