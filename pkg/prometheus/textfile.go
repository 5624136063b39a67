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
package prometheus

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// TextfileWriter exports a registry in the node_exporter textfile
// collector format. A process that exits before it could be scraped
// writes its metrics once on the way out.
type TextfileWriter struct {
	path     string
	gatherer prometheus.Gatherer
}

// NewTextfileWriter writes the default registry to path. An empty path
// disables the writer.
func NewTextfileWriter(path string) *TextfileWriter {
	return &TextfileWriter{path: path, gatherer: prometheus.DefaultGatherer}
}

func (w *TextfileWriter) Write() error {
	if w.path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(w.path, w.gatherer); err != nil {
		return errors.Wrapf(err, "error writing metrics to %s", w.path)
	}

	log.Debugf("wrote metrics to %s", w.path)
	return nil
}
