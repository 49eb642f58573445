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

// Status 岗位状态，只有 Open 且处于发布窗口内的岗位才会出现在公开招聘版上。
type Status string

const (
	StatusDraft  Status = "Draft"
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusClosed:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Position 招聘岗位（requisition），聚合了面试轮次配置和筛选问题。
// ReqID 在学区内唯一。
type Position struct {
	ID          int64
	DistrictID  int64
	ReqID       string
	Title       string
	Department  string
	Worksite    string
	FTE         float64
	SalaryRange string
	StartDate   int64
	Status      Status

	EmployeeCategory string
	Description      string
	Requirements     string

	// 发布窗口，unix毫秒，0表示未设置
	PostingStartDate int64
	PostingEndDate   int64

	InterviewStageCount int

	Stages    []InterviewStage
	Questions []ScreeningQuestion

	Ctime int64
	Utime int64
}

func (p Position) IsValid() bool {
	return p.DistrictID != 0 && p.ReqID != "" && p.Title != "" && p.Status.IsValid()
}

// IsOpen 岗位是否对外开放：状态为 Open 且当天落在发布窗口内。
// 关闭岗位不需要改动发布日期，翻转状态即可立刻从招聘版消失。
func (p Position) IsOpen(now time.Time) bool {
	if p.Status != StatusOpen {
		return false
	}
	if p.PostingStartDate == 0 || p.PostingEndDate == 0 {
		return false
	}
	today := now.UnixMilli()
	return p.PostingStartDate <= today && today <= p.PostingEndDate
}

// InterviewStage 岗位的面试轮次定义，轮次编号从1开始在岗位内唯一。
type InterviewStage struct {
	ID          int64
	DistrictID  int64
	PositionID  int64
	StageNumber int
	StageName   string
	Panel       []Interviewer
}

// Interviewer 面试官（面板成员）。
type Interviewer struct {
	ID         int64
	DistrictID int64
	StageID    int64
	Name       string
	Email      string
	Role       string
}

// ScreeningQuestion 学区级别的筛选问题库。
type ScreeningQuestion struct {
	ID         int64
	DistrictID int64
	Question   string
	Category   string
	Required   bool
}

// JobTemplate 用于快速创建岗位的学区级模板。
type JobTemplate struct {
	ID                  int64
	DistrictID          int64
	TemplateName        string
	PrimaryJobTitle     string
	Department          string
	Worksite            string
	FTE                 float64
	SalaryRange         string
	EmployeeCategory    string
	InterviewStageCount int
}
