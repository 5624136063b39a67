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
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/endpoints"
)

type configBuilder struct {
	config *aws.Config
}

// NewConfigBuilder builds the AWS config shared by the STS and S3 clients.
func NewConfigBuilder() *configBuilder {
	return &configBuilder{config: aws.NewConfig().WithCredentialsChainVerboseErrors(true)}
}

// WithRegion configures the *aws.Config with a region and regional STS
// endpoints. With an empty string it will not configure.
func (c *configBuilder) WithRegion(region string) *configBuilder {
	if region == "" {
		return c
	}

	c.config.WithRegion(region)
	c.config.STSRegionalEndpoint = endpoints.RegionalSTSEndpoint

	return c
}

// WithCredentials signs requests with the given temporary credentials
// instead of the default chain. nil leaves the config untouched.
func (c *configBuilder) WithCredentials(creds *Credentials) *configBuilder {
	if creds == nil {
		return c
	}

	c.config.WithCredentials(credentials.NewStaticCredentials(creds.AccessKeyId, creds.SecretAccessKey, creds.Token))
	return c
}

func (c *configBuilder) Config() *aws.Config {
	return c.config
}
