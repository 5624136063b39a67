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
	"fmt"
)

// RoleAssumptionError is returned when the token service rejects or
// cannot be reached for an AssumeRole request.
type RoleAssumptionError struct {
	RoleARN     string
	SessionName string
	Err         error
}

func (e *RoleAssumptionError) Error() string {
	return fmt.Sprintf("error assuming role %s (session %s): %s", e.RoleARN, e.SessionName, e.Err)
}

func (e *RoleAssumptionError) Unwrap() error {
	return e.Err
}
