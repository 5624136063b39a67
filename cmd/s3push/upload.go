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
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uswitch/s3push/pkg/aws/s3"
	"github.com/uswitch/s3push/pkg/aws/sts"
	"github.com/uswitch/s3push/pkg/upload"
)

type uploadCommand struct {
	logOptions
	telemetryOptions

	config  *upload.Config
	timeout time.Duration
}

func (cmd *uploadCommand) Bind(parser parser) {
	cmd.logOptions.bind(parser)
	cmd.telemetryOptions.bind(parser)

	cmd.config = upload.NewConfig()
	c := cmd.config

	parser.Flag("region", "AWS region for STS and S3.").Envar("AWS_REGION").Required().StringVar(&c.Region)
	parser.Flag("role-arn", "Role to assume, as an ARN or a name relative to --role-base-arn.").Envar("ROLE_ARN_SOCIOS").Required().StringVar(&c.RoleARN)
	parser.Flag("role-base-arn", "Base ARN for role names. e.g. arn:aws:iam::123456789012:role/").Envar("ROLE_BASE_ARN").Default("").StringVar(&c.RoleBaseARN)
	parser.Flag("session-name", "Role session name.").Envar("SESSION_NAME").Default("sesionFinancieraSocios").StringVar(&c.SessionName)
	parser.Flag("session-duration", "Duration requested for the assumed role session.").Default(sts.DefaultSessionDuration.String()).DurationVar(&c.SessionDuration)
	parser.Flag("refresh-threshold", "Age after which cached credentials are re-issued.").Default(sts.DefaultRefreshThreshold.String()).DurationVar(&c.RefreshThreshold)

	parser.Flag("bucket", "Destination bucket.").Envar("BUCKET_SOCIOS").Required().StringVar(&c.Bucket)
	parser.Flag("file-name", "Object name, appended to the key prefix.").Envar("FILE_NAME_SOCIOS").Required().StringVar(&c.FileName)
	parser.Flag("file-path", "Local file to upload.").Envar("FILE_PATH_SOCIOS").Required().StringVar(&c.FilePath)
	parser.Flag("key-prefix", "Key prefix inside the bucket.").Envar("PATH_DIR_S3").Required().StringVar(&c.KeyPrefix)
	parser.Flag("base-uri", "Public base URI the bucket is served from.").Envar("URI_BASE").Required().StringVar(&c.BaseURI)

	parser.Flag("timeout", "Abort the upload after this long, 0 to wait indefinitely.").Default("0s").DurationVar(&cmd.timeout)
}

func (cmd *uploadCommand) run() (string, error) {
	cmd.configureLogger()

	if err := cmd.config.Validate(); err != nil {
		return "", err
	}

	cmd.start()
	defer cmd.flush()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cmd.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, cmd.timeout)
		defer cancelTimeout()
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stopChan)

	go func() {
		select {
		case <-stopChan:
			log.Infof("interrupted, cancelling upload")
			cancel()
		case <-ctx.Done():
		}
	}()

	gateway, err := sts.DefaultGateway(sts.NewConfigBuilder().WithRegion(cmd.config.Region).Config())
	if err != nil {
		return "", err
	}

	workflow := &upload.Workflow{
		Resolver:    sts.DefaultResolver(cmd.config.RoleBaseARN),
		Credentials: sts.DefaultCache(gateway, cmd.config.SessionDuration, cmd.config.RefreshThreshold),
		Uploader:    s3.NewUploader(cmd.config.KeyPrefix, cmd.config.BaseURI, s3.DefaultClientFactory(cmd.config.Region)),
	}

	url, err := workflow.Run(ctx, cmd.config)
	if err != nil {
		return "", err
	}

	log.WithField("s3.url", url).Infof("file uploaded successfully")
	return url, nil
}
