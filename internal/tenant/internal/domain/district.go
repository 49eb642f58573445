// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

// District 是租户聚合根，系统里所有业务数据都归属于唯一的学区。
type District struct {
	ID           int64
	Name         string
	Code         string
	ContactEmail string
	ContactPhone string
	Address      string
	Settings     map[string]any
	Active       bool
	Ctime        int64
	Utime        int64
}

func (d District) IsValid() bool {
	return d.Name != "" && d.Code != ""
}
