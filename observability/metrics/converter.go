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

import "github.com/prometheus/client_golang/prometheus"

var (
	moduleOfConverter = "converter"

	FileCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: moduleOfConverter,
		Name:      "file_count",
		Help:      "Total IES files processed",
	}, []string{LabelMode, LabelResult})

	RowCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: moduleOfConverter,
		Name:      "row_count",
		Help:      "Total rows decoded",
	}, []string{LabelMode})

	ReadThroughputCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: moduleOfConverter,
		Name:      "read_byte_count",
		Help:      "Total bytes of IES files read",
	}, []string{LabelMode})

	DecodeCostSecond = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: moduleOfConverter,
		Name:      "decode_cost_second",
		Help:      "The cost of decoding one IES file",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{LabelMode})
)
