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

import "time"

// Status Offer状态。Pending 是唯一的非终态。
type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusDeclined  Status = "Declined"
	StatusExpired   Status = "Expired"
	StatusWithdrawn Status = "Withdrawn"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusExpired, StatusWithdrawn:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Offer 录用通知，与申请1:1。SN是对外的不透明编号，充当接受/拒绝的持有凭证。
// 信函文本在创建时快照，模板后续被改动也不影响已发出的Offer。
type Offer struct {
	ID            int64
	SN            string
	DistrictID    int64
	ApplicationID int64
	TemplateID    int64

	// TemplateText 创建时的模板快照
	TemplateText string
	// TemplateData 占位符取值
	TemplateData map[string]any

	Salary         string
	PositionTitle  string
	OfferDate      int64
	StartDate      int64
	ExpirationDate int64

	Status         Status
	AcceptedDate   int64
	DeclinedReason string

	Ctime int64
	Utime int64
}

func (o Offer) IsValid() bool {
	return o.DistrictID != 0 && o.ApplicationID != 0 &&
		o.TemplateText != "" && o.ExpirationDate != 0
}

// IsExpired 过期判定：仅 Pending 状态会过期。
func (o Offer) IsExpired(now time.Time) bool {
	return o.Status == StatusPending && o.ExpirationDate < now.UnixMilli()
}

// EffectiveStatus 展示用状态：过期但尚未被惰性落库的 Pending 按 Expired 展示。
func (o Offer) EffectiveStatus(now time.Time) Status {
	if o.IsExpired(now) {
		return StatusExpired
	}
	return o.Status
}

// OfferTemplate 学区级信函模板，占位符用 {{name}} 语法。
type OfferTemplate struct {
	ID           int64
	DistrictID   int64
	Name         string
	TemplateText string
	Ctime        int64
	Utime        int64
}

// HiredEmployee 录用生效的员工记录，仅由Offer接受这一条路径创建，
// 与Offer和申请都是1:1。
type HiredEmployee struct {
	ID            int64
	DistrictID    int64
	OfferID       int64
	ApplicationID int64
	Name          string
	Email         string
	PositionTitle string
	// HireDate 等于Offer的入职日期
	HireDate int64
	Ctime    int64
}
