// Copyright 2017 uSwitch
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
package s3

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	uploads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "s3push",
			Subsystem: "s3",
			Name:      "uploads_total",
			Help:      "Number of objects successfully uploaded",
		},
	)

	uploadErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "s3push",
			Subsystem: "s3",
			Name:      "upload_errors_total",
			Help:      "Number of failed uploads",
		},
	)

	uploadedBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "s3push",
			Subsystem: "s3",
			Name:      "uploaded_bytes_total",
			Help:      "Number of bytes successfully uploaded",
		},
	)

	uploadTiming = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "s3push",
			Subsystem: "s3",
			Name:      "upload_timing_seconds",
			Help:      "Bucketed histogram of PutObject timings",

			// 10ms to ~20min
			Buckets: prometheus.ExponentialBuckets(.01, 2, 17),
		},
	)
)

func init() {
	prometheus.MustRegister(uploads)
	prometheus.MustRegister(uploadErrors)
	prometheus.MustRegister(uploadedBytes)
	prometheus.MustRegister(uploadTiming)
}
