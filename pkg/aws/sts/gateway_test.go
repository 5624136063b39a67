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
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
)

type stubSTS struct {
	stsiface.STSAPI
	input  *sts.AssumeRoleInput
	output *sts.AssumeRoleOutput
	err    error
}

func (s *stubSTS) AssumeRoleWithContext(ctx aws.Context, in *sts.AssumeRoleInput, opts ...request.Option) (*sts.AssumeRoleOutput, error) {
	s.input = in
	return s.output, s.err
}

func TestIssueAssumesRoleWithDuration(t *testing.T) {
	expiry := time.Date(2024, 1, 1, 12, 15, 0, 0, time.UTC)
	client := &stubSTS{output: &sts.AssumeRoleOutput{
		Credentials: &sts.Credentials{
			AccessKeyId:     aws.String("AKIAEXAMPLE"),
			SecretAccessKey: aws.String("secret"),
			SessionToken:    aws.String("token"),
			Expiration:      aws.Time(expiry),
		},
	}}

	creds, err := NewGateway(client).Issue(context.Background(), "arn:aws:iam::123456789012:role/uploader", "sess1", DefaultSessionDuration)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if aws.Int64Value(client.input.DurationSeconds) != 900 {
		t.Error("unexpected duration seconds:", aws.Int64Value(client.input.DurationSeconds))
	}
	if aws.StringValue(client.input.RoleArn) != "arn:aws:iam::123456789012:role/uploader" {
		t.Error("unexpected role arn:", aws.StringValue(client.input.RoleArn))
	}
	if aws.StringValue(client.input.RoleSessionName) != "sess1" {
		t.Error("unexpected session name:", aws.StringValue(client.input.RoleSessionName))
	}

	if creds.AccessKeyId != "AKIAEXAMPLE" || creds.SecretAccessKey != "secret" || creds.Token != "token" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
	if !creds.Expiration.Equal(expiry) {
		t.Error("unexpected expiration:", creds.Expiration)
	}
}

func TestIssueReturnsServiceError(t *testing.T) {
	client := &stubSTS{err: awserr.New("AccessDenied", "denied", nil)}

	_, err := NewGateway(client).Issue(context.Background(), "arn", "sess1", DefaultSessionDuration)
	if err == nil {
		t.Fatal("expected error")
	}

	if aerr, ok := err.(awserr.Error); !ok || aerr.Code() != "AccessDenied" {
		t.Error("expected service error to be returned unchanged, was", err)
	}
}

func TestIssueFailsWithoutCredentials(t *testing.T) {
	client := &stubSTS{output: &sts.AssumeRoleOutput{}}

	_, err := NewGateway(client).Issue(context.Background(), "arn", "sess1", DefaultSessionDuration)
	if err == nil {
		t.Error("expected error for empty response")
	}
}

func TestExpiredAt(t *testing.T) {
	now := time.Now()

	if NewCredentials("a", "b", "c", time.Time{}).ExpiredAt(now) {
		t.Error("credentials without expiry shouldn't expire")
	}
	if !NewCredentials("a", "b", "c", now).ExpiredAt(now) {
		t.Error("expected credentials to be expired at their expiry")
	}
	if NewCredentials("a", "b", "c", now.Add(time.Second)).ExpiredAt(now) {
		t.Error("expected credentials to still be valid")
	}
}
