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
	"fmt"
)

// UploadError is returned when an object could not be written, including
// when the local file could not be read.
type UploadError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("error uploading s3://%s/%s: %s", e.Bucket, e.Key, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("error opening %s: %s", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
