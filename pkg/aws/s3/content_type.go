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
	"path/filepath"
	"strings"
)

const (
	ContentTypeJPEG        = "image/jpeg"
	ContentTypePNG         = "image/png"
	ContentTypeOctetStream = "application/octet-stream"
)

// ContentTypeFor maps a file name's extension, ignoring case, to the
// content type the object is stored with.
func ContentTypeFor(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg":
		return ContentTypeJPEG
	case ".png":
		return ContentTypePNG
	default:
		return ContentTypeOctetStream
	}
}
