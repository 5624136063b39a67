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
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/uswitch/s3push/pkg/aws/sts"
	"github.com/uswitch/s3push/pkg/statsd"
)

// FileUploader writes a local file to a bucket and returns its public URL.
type FileUploader interface {
	Upload(ctx context.Context, bucket, fileName, filePath string, creds *sts.Credentials) (string, error)
}

// Workflow assumes the configured role and uploads the configured file
// with the resulting credentials.
type Workflow struct {
	Resolver    sts.ARNResolver
	Credentials sts.CredentialsProvider
	Uploader    FileUploader
}

// Run returns the public URL of the uploaded file. Errors from the
// credentials provider and the uploader are returned unchanged so callers
// can match them with errors.As.
func (w *Workflow) Run(ctx context.Context, cfg *Config) (string, error) {
	timing := statsd.Client.NewTiming()
	defer timing.Send("workflow.run")

	identity, err := sts.NewRoleIdentity(w.Resolver, cfg.RoleARN, cfg.SessionName)
	if err != nil {
		return "", errors.Wrap(err, "error resolving role")
	}
	logger := log.WithFields(identity.LogFields())

	logger.Debugf("requesting credentials")
	creds, err := w.Credentials.CredentialsForRole(ctx, identity)
	if err != nil {
		statsd.Client.Increment("credentials.error")
		return "", err
	}
	logger.Infof("credentials successfully retrieved")

	url, err := w.Uploader.Upload(ctx, cfg.Bucket, cfg.FileName, cfg.FilePath, creds)
	if err != nil {
		statsd.Client.Increment("upload.error")
		return "", err
	}

	statsd.Client.Increment("upload.success")
	return url, nil
}
