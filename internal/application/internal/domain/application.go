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

import "errors"

// Stage 申请阶段，严格有序，不允许跳跃和回绕。
type Stage string

const (
	StageApplicationReview   Stage = "Application Review"
	StageScreening           Stage = "Screening"
	StageInterview           Stage = "Interview"
	StageInterviewsCompleted Stage = "Interviews Completed"
	StageReferenceCheck      Stage = "Reference Check"
	StageOffer               Stage = "Offer"
	StageOfferAccepted       Stage = "Offer Accepted"
	StageRejected            Stage = "Rejected"
)

// stageOrder 推进路径。Rejected 不在路径上，只能通过 reject 进入。
var stageOrder = []Stage{
	StageApplicationReview,
	StageScreening,
	StageInterview,
	StageInterviewsCompleted,
	StageReferenceCheck,
	StageOffer,
	StageOfferAccepted,
}

var (
	// ErrFinalStage 已处于终态，不能再推进
	ErrFinalStage = errors.New("申请已处于终态")
	// ErrUnknownStage 非法的阶段值
	ErrUnknownStage = errors.New("未知的申请阶段")
)

func (s Stage) IsValid() bool {
	if s == StageRejected {
		return true
	}
	for _, stage := range stageOrder {
		if stage == s {
			return true
		}
	}
	return false
}

func (s Stage) String() string {
	return string(s)
}

// IsTerminal 终态：Offer Accepted 和 Rejected。
func (s Stage) IsTerminal() bool {
	return s == StageOfferAccepted || s == StageRejected
}

// Next 返回推进路径上的下一个阶段。终态返回 ErrFinalStage。
func (s Stage) Next() (Stage, error) {
	if s.IsTerminal() {
		return s, ErrFinalStage
	}
	for i, stage := range stageOrder {
		if stage == s {
			return stageOrder[i+1], nil
		}
	}
	return s, ErrUnknownStage
}

// JobApplication 求职申请，(position, email) 唯一。
type JobApplication struct {
	ID         int64
	DistrictID int64
	PositionID int64

	ApplicantName string
	Email         string
	Phone         string
	ResumeURL     string
	CoverLetter   string
	// ScreeningAnswers 按问题ID记录的筛选问题答案
	ScreeningAnswers map[string]any

	Stage Stage
	// CurrentInterviewStage 当前所处面试轮次编号
	CurrentInterviewStage int
	// CompletedInterviewStages 已完成的最大轮次编号，只增不减
	CompletedInterviewStages int
	Active                   bool

	References   []Reference
	Availability []InterviewAvailability

	Ctime int64
	Utime int64
}

func (j JobApplication) IsValid() bool {
	return j.DistrictID != 0 && j.PositionID != 0 &&
		j.ApplicantName != "" && j.Email != ""
}

// Reference 推荐人。
type Reference struct {
	ID            int64
	ApplicationID int64
	Name          string
	Relationship  string
	Email         string
	Phone         string
}

// InterviewAvailability 申请人的可面试时段。
type InterviewAvailability struct {
	ID            int64
	ApplicationID int64
	Date          string
	TimeSlot      string
}
