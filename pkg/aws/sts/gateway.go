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
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
	"github.com/prometheus/client_golang/prometheus"
)

type DefaultSTSGateway struct {
	client stsiface.STSAPI
}

// DefaultGateway creates a gateway talking to STS with the base
// credentials resolved from cfg and the default credential chain.
func DefaultGateway(cfg *aws.Config) (*DefaultSTSGateway, error) {
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating aws session: %s", err)
	}

	return NewGateway(sts.New(sess)), nil
}

func NewGateway(client stsiface.STSAPI) *DefaultSTSGateway {
	return &DefaultSTSGateway{client: client}
}

func (g *DefaultSTSGateway) Issue(ctx context.Context, roleARN, sessionName string, duration time.Duration) (*Credentials, error) {
	timer := prometheus.NewTimer(assumeRole)
	defer timer.ObserveDuration()

	assumeRoleExecuting.Inc()
	defer assumeRoleExecuting.Dec()

	in := &sts.AssumeRoleInput{
		DurationSeconds: aws.Int64(int64(duration.Seconds())),
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(sessionName),
	}
	resp, err := g.client.AssumeRoleWithContext(ctx, in)
	if err != nil {
		return nil, err
	}

	if resp.Credentials == nil {
		return nil, fmt.Errorf("no credentials returned for %s", roleARN)
	}

	c := resp.Credentials
	return NewCredentials(aws.StringValue(c.AccessKeyId), aws.StringValue(c.SecretAccessKey), aws.StringValue(c.SessionToken), aws.TimeValue(c.Expiration)), nil
}
