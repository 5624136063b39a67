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

	log "github.com/sirupsen/logrus"
)

// RoleIdentity identifies one credential slot: the role to assume and the
// session label the credentials are issued under.
type RoleIdentity struct {
	Role        ResolvedRole
	SessionName string
}

func NewRoleIdentity(arnResolver ARNResolver, role, sessionName string) (*RoleIdentity, error) {
	if sessionName == "" {
		return nil, fmt.Errorf("session name can't be empty")
	}

	resolvedRole, err := arnResolver.Resolve(role)
	if err != nil {
		return nil, err
	}

	return &RoleIdentity{
		Role:        *resolvedRole,
		SessionName: sessionName,
	}, nil
}

func (i *RoleIdentity) String() string {
	return fmt.Sprintf("%s|%s", i.Role.ARN, i.SessionName)
}

func (i *RoleIdentity) LogFields() log.Fields {
	return log.Fields{
		"role.name":    i.Role.Name,
		"role.arn":     i.Role.ARN,
		"role.session": i.SessionName,
	}
}
