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
package sts

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	cacheHit = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "s3push",
			Subsystem: "sts",
			Name:      "cache_hit_total",
			Help:      "Number of cache hits to the credentials cache",
		},
	)

	cacheMiss = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "s3push",
			Subsystem: "sts",
			Name:      "cache_miss_total",
			Help:      "Number of cache misses to the credentials cache",
		},
	)

	cacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "s3push",
			Subsystem: "sts",
			Name:      "cache_size",
			Help:      "Number of credentials held in the cache",
		},
	)

	errorIssuing = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "s3push",
			Subsystem: "sts",
			Name:      "issuing_errors_total",
			Help:      "Number of errors issuing credentials",
		},
	)

	assumeRole = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "s3push",
			Subsystem: "sts",
			Name:      "assumerole_timing_seconds",
			Help:      "Bucketed histogram of assumeRole timings",

			// 1ms to 5min
			Buckets: prometheus.ExponentialBuckets(.001, 2, 13),
		},
	)

	assumeRoleExecuting = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "s3push",
			Subsystem: "sts",
			Name:      "assumerole_current",
			Help:      "Number of assume role calls currently executing",
		},
	)
)

func init() {
	prometheus.MustRegister(cacheHit)
	prometheus.MustRegister(cacheMiss)
	prometheus.MustRegister(cacheSize)
	prometheus.MustRegister(errorIssuing)
	prometheus.MustRegister(assumeRole)
	prometheus.MustRegister(assumeRoleExecuting)
}
