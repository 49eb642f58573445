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

package web

import (
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/position"
)

type Interview struct {
	ID            int64 `json:"id,omitempty"`
	ApplicationID int64 `json:"applicationId,omitempty"`
	StageID       int64 `json:"stageId,omitempty"`
	StageNumber   int   `json:"stageNumber,omitempty"`

	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`

	Virtual     bool   `json:"virtual,omitempty"`
	MeetingLink string `json:"meetingLink,omitempty"`

	Status   string `json:"status,omitempty"`
	Feedback string `json:"feedback,omitempty"`
	Rating   int8   `json:"rating,omitempty"`

	Utime int64 `json:"utime,omitempty"`
}

type Interviewer struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

type ScheduleReq struct {
	ApplicationID int64  `json:"applicationId"`
	StageID       int64  `json:"stageId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	Virtual       bool   `json:"virtual"`
}

type MarkCompletedReq struct {
	ID       int64  `json:"id"`
	Feedback string `json:"feedback"`
	Rating   int8   `json:"rating"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ByApplicationReq struct {
	ApplicationID int64 `json:"applicationId"`
}

type DateRangeReq struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type UpcomingReq struct {
	Days int `json:"days"`
}

type InterviewersForReq struct {
	StageID int64  `json:"stageId"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

func (r ScheduleReq) toDomain() domain.Interview {
	return domain.Interview{
		ApplicationID: r.ApplicationID,
		StageID:       r.StageID,
		Date:          r.Date,
		Time:          r.Time,
		Location:      r.Location,
		Virtual:       r.Virtual,
	}
}

func newInterview(itv domain.Interview) Interview {
	return Interview{
		ID:            itv.ID,
		ApplicationID: itv.ApplicationID,
		StageID:       itv.StageID,
		StageNumber:   itv.StageNumber,
		Date:          itv.Date,
		Time:          itv.Time,
		Location:      itv.Location,
		Virtual:       itv.Virtual,
		MeetingLink:   itv.MeetingLink,
		Status:        itv.Status.String(),
		Feedback:      itv.Feedback,
		Rating:        itv.Rating,
		Utime:         itv.Utime,
	}
}

func newInterviewer(iv position.Interviewer) Interviewer {
	return Interviewer{
		ID:    iv.ID,
		Name:  iv.Name,
		Email: iv.Email,
		Role:  iv.Role,
	}
}
