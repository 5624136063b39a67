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
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultSessionDuration is requested for every AssumeRole call.
	DefaultSessionDuration = 15 * time.Minute
	// DefaultRefreshThreshold is the age after which cached credentials
	// are considered stale and re-issued.
	DefaultRefreshThreshold = 14 * time.Minute
)

type cachedCredentials struct {
	credentials *Credentials
	issuedAt    time.Time
}

// credentialsCache holds one slot per role identity. Slots never expire
// on their own; staleness is decided against the cache's clock on every
// read so a slot older than the refresh threshold is never served.
//
// Reads and refreshes are not serialised: two callers missing the same
// slot concurrently will both issue.
type credentialsCache struct {
	cache            *cache.Cache
	gateway          STSGateway
	sessionDuration  time.Duration
	refreshThreshold time.Duration
	now              func() time.Time
}

type CacheOption func(*credentialsCache)

// WithClock replaces time.Now as the source of issue and read times.
func WithClock(now func() time.Time) CacheOption {
	return func(c *credentialsCache) {
		c.now = now
	}
}

func DefaultCache(gateway STSGateway, sessionDuration, refreshThreshold time.Duration, opts ...CacheOption) *credentialsCache {
	c := &credentialsCache{
		cache:            cache.New(cache.NoExpiration, 0),
		gateway:          gateway,
		sessionDuration:  sessionDuration,
		refreshThreshold: refreshThreshold,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *credentialsCache) CredentialsForRole(ctx context.Context, identity *RoleIdentity) (*Credentials, error) {
	logger := log.WithFields(identity.LogFields())
	now := c.now()

	if item, found := c.cache.Get(identity.String()); found {
		cached := item.(*cachedCredentials)
		elapsed := now.Sub(cached.issuedAt)

		if elapsed <= c.refreshThreshold && !cached.credentials.ExpiredAt(now) {
			cacheHit.Inc()
			logger.WithField("credentials.age", elapsed.String()).Debugf("using cached credentials")
			return cached.credentials, nil
		}

		logger.WithField("credentials.age", elapsed.String()).Infof("cached credentials are stale, will refresh")
	}

	cacheMiss.Inc()

	credentials, err := c.gateway.Issue(ctx, identity.Role.ARN, identity.SessionName, c.sessionDuration)
	if err != nil {
		errorIssuing.Inc()
		logger.Errorf("error requesting credentials: %s", err.Error())
		return nil, &RoleAssumptionError{RoleARN: identity.Role.ARN, SessionName: identity.SessionName, Err: err}
	}

	c.cache.Set(identity.String(), &cachedCredentials{credentials: credentials, issuedAt: now}, cache.NoExpiration)
	cacheSize.Set(float64(c.cache.ItemCount()))

	log.WithFields(CredentialsFields(credentials, identity.Role.ARN)).Infof("requested new credentials")

	return credentials, nil
}
