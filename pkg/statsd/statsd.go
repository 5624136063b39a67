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
package statsd

import (
	"fmt"
	"time"

	"gopkg.in/alexcesaro/statsd.v2"
)

// Client is muted until New is called with an address.
var Client *statsd.Client

func init() {
	Client, _ = statsd.New(statsd.Mute(true))
}

func New(address string, prefix string, interval time.Duration) error {
	var options []statsd.Option
	if address == "" {
		options = []statsd.Option{statsd.Mute(true)}
	} else {
		options = []statsd.Option{
			statsd.Address(address),
			statsd.Prefix(prefix),
			statsd.FlushPeriod(interval),
		}
	}

	sd, err := statsd.New(options...)

	if err != nil {
		return fmt.Errorf("statsd.New: %v", err)
	}

	Client = sd
	return nil
}

// Close flushes buffered metrics.
func Close() {
	Client.Close()
}
