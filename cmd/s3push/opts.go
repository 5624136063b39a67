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
package main

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uswitch/s3push/pkg/prometheus"
	"github.com/uswitch/s3push/pkg/statsd"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

type parser interface {
	Flag(name, help string) *kingpin.FlagClause
}

type logOptions struct {
	jsonLog  bool
	logLevel string
}

func (o *logOptions) bind(parser parser) {
	parser.Flag("json-log", "Output log in JSON").BoolVar(&o.jsonLog)
	parser.Flag("level", "Log level: debug, info, warn, error.").Default("info").EnumVar(&o.logLevel, "debug", "info", "warn", "error")
}

func (o *logOptions) configureLogger() {
	if o.jsonLog {
		log.SetFormatter(&log.JSONFormatter{})
	}

	switch o.logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	}
}

type telemetryOptions struct {
	textfilePath   string
	statsD         string
	statsDPrefix   string
	statsDInterval time.Duration
}

func (o *telemetryOptions) bind(parser parser) {
	parser.Flag("metrics-textfile", "Write Prometheus metrics to this file on exit. e.g. /var/lib/node_exporter/s3push.prom").Envar("METRICS_TEXTFILE").Default("").StringVar(&o.textfilePath)

	parser.Flag("statsd", "UDP address to publish StatsD metrics. e.g. 127.0.0.1:8125").Default("").StringVar(&o.statsD)
	parser.Flag("statsd-prefix", "StatsD metric prefix.").Default("s3push").StringVar(&o.statsDPrefix)
	parser.Flag("statsd-interval", "Interval to publish to StatsD").Default("100ms").DurationVar(&o.statsDInterval)
}

// start publishes to StatsD when an address is configured. A sink that
// can't be reached leaves the muted client in place.
func (o telemetryOptions) start() {
	if err := statsd.New(o.statsD, o.statsDPrefix, o.statsDInterval); err != nil {
		log.Warnf("error configuring statsd, metrics won't be published: %s", err.Error())
	}
}

func (o telemetryOptions) flush() {
	statsd.Close()

	if err := prometheus.NewTextfileWriter(o.textfilePath).Write(); err != nil {
		log.Warnf("error writing metrics: %s", err.Error())
	}
}
