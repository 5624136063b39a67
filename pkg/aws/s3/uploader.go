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
package s3

import (
	"context"
	"io"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/uswitch/s3push/pkg/aws/sts"
)

// UploadRequest describes a single PutObject call.
type UploadRequest struct {
	Bucket      string
	Key         string
	FilePath    string
	ContentType string
}

func (r *UploadRequest) LogFields() log.Fields {
	return log.Fields{
		"s3.bucket":    r.Bucket,
		"s3.key":       r.Key,
		"file.path":    r.FilePath,
		"content.type": r.ContentType,
	}
}

// ClientFactory builds an S3 client signing with the given credentials.
type ClientFactory func(creds *sts.Credentials) (s3iface.S3API, error)

// DefaultClientFactory creates clients for region.
func DefaultClientFactory(region string) ClientFactory {
	return func(creds *sts.Credentials) (s3iface.S3API, error) {
		cfg := sts.NewConfigBuilder().WithRegion(region).WithCredentials(creds).Config()
		sess, err := session.NewSession(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "error creating aws session")
		}
		return awss3.New(sess), nil
	}
}

// Uploader writes local files under a fixed key prefix and reports the
// public URL they are served from.
type Uploader struct {
	keyPrefix string
	baseURI   string
	clients   ClientFactory
}

func NewUploader(keyPrefix, baseURI string, clients ClientFactory) *Uploader {
	return &Uploader{keyPrefix: keyPrefix, baseURI: baseURI, clients: clients}
}

// Key is prefix/fileName. Slashes are not normalised.
func (u *Uploader) Key(fileName string) string {
	return u.keyPrefix + "/" + fileName
}

// PublicURL is synthesised from the base URI and never checked against
// the bucket.
func (u *Uploader) PublicURL(key string) string {
	return u.baseURI + "/" + key
}

// Upload streams the file at filePath to bucket in a single PutObject call
// and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, bucket, fileName, filePath string, creds *sts.Credentials) (string, error) {
	req := &UploadRequest{
		Bucket:      bucket,
		Key:         u.Key(fileName),
		FilePath:    filePath,
		ContentType: ContentTypeFor(fileName),
	}
	logger := log.WithFields(req.LogFields())

	url, err := u.put(ctx, req, creds, logger)
	if err != nil {
		uploadErrors.Inc()
		logger.Errorf("error uploading file: %s", err.Error())
		return "", &UploadError{Bucket: req.Bucket, Key: req.Key, Err: err}
	}

	logger.WithField("s3.url", url).Infof("file uploaded")
	return url, nil
}

func (u *Uploader) put(ctx context.Context, req *UploadRequest, creds *sts.Credentials, logger *log.Entry) (string, error) {
	f, err := os.Open(req.FilePath)
	if err != nil {
		return "", &FileAccessError{Path: req.FilePath, Err: err}
	}
	defer f.Close()

	if err := checkContentType(f, req.ContentType, logger); err != nil {
		return "", &FileAccessError{Path: req.FilePath, Err: err}
	}

	client, err := u.clients(creds)
	if err != nil {
		return "", err
	}

	timer := prometheus.NewTimer(uploadTiming)
	_, err = client.PutObjectWithContext(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(req.Bucket),
		Key:         aws.String(req.Key),
		Body:        f,
		ContentType: aws.String(req.ContentType),
	})
	timer.ObserveDuration()
	if err != nil {
		return "", err
	}

	uploads.Inc()
	if info, err := f.Stat(); err == nil {
		uploadedBytes.Add(float64(info.Size()))
	}

	return u.PublicURL(req.Key), nil
}

// checkContentType sniffs the head of r and warns when it disagrees with
// the extension derived type. r is rewound before returning.
func checkContentType(r io.ReadSeeker, contentType string, logger *log.Entry) error {
	detected, err := mimetype.DetectReader(r)
	if err != nil {
		logger.Debugf("unable to detect content type: %s", err.Error())
	} else if contentType != ContentTypeOctetStream && !detected.Is(contentType) {
		logger.WithField("content.detected", detected.String()).Warnf("file content doesn't look like %s", contentType)
	}

	_, err = r.Seek(0, io.SeekStart)
	return err
}
