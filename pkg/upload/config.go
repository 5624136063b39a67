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
package upload

import (
	"fmt"
	"strings"
	"time"

	"github.com/uswitch/s3push/pkg/aws/sts"
)

// Config is built once at startup and passed to every component.
type Config struct {
	Region      string
	RoleARN     string
	RoleBaseARN string
	SessionName string

	Bucket    string
	FileName  string
	FilePath  string
	KeyPrefix string
	BaseURI   string

	SessionDuration  time.Duration
	RefreshThreshold time.Duration
}

func NewConfig() *Config {
	return &Config{
		SessionDuration:  sts.DefaultSessionDuration,
		RefreshThreshold: sts.DefaultRefreshThreshold,
	}
}

// Validate reports every missing required field at once.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"region", c.Region},
		{"role arn", c.RoleARN},
		{"session name", c.SessionName},
		{"bucket", c.Bucket},
		{"file name", c.FileName},
		{"file path", c.FilePath},
		{"key prefix", c.KeyPrefix},
		{"base uri", c.BaseURI},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}

	// AssumeRole accepts 15 minutes at the least.
	if c.SessionDuration < 15*time.Minute {
		return fmt.Errorf("session duration must be at least 15m, was %s", c.SessionDuration)
	}
	if c.RefreshThreshold <= 0 || c.RefreshThreshold >= c.SessionDuration {
		return fmt.Errorf("refresh threshold %s must be positive and below the session duration %s", c.RefreshThreshold, c.SessionDuration)
	}

	return nil
}
