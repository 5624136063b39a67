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
	"time"

	log "github.com/sirupsen/logrus"
)

// Credentials are the temporary security credentials issued for an
// assumed role.
type Credentials struct {
	AccessKeyId     string
	SecretAccessKey string
	Token           string
	Expiration      time.Time
}

func NewCredentials(accessKey, secretKey, token string, expiry time.Time) *Credentials {
	return &Credentials{
		AccessKeyId:     accessKey,
		SecretAccessKey: secretKey,
		Token:           token,
		Expiration:      expiry,
	}
}

// ExpiredAt reports whether the expiry returned by the token service
// has passed at t. Credentials without a reported expiry never expire.
func (c *Credentials) ExpiredAt(t time.Time) bool {
	if c.Expiration.IsZero() {
		return false
	}
	return !t.Before(c.Expiration)
}

func CredentialsFields(creds *Credentials, role string) log.Fields {
	return log.Fields{
		"credentials.access.key": creds.AccessKeyId,
		"credentials.expiration": creds.Expiration.Format(time.RFC3339),
		"role.arn":               role,
	}
}
