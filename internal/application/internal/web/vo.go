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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
)

type JobApplication struct {
	ID         int64 `json:"id,omitempty"`
	PositionID int64 `json:"positionId,omitempty"`

	ApplicantName string         `json:"applicantName,omitempty"`
	Email         string         `json:"email,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	ResumeURL     string         `json:"resumeUrl,omitempty"`
	CoverLetter   string         `json:"coverLetter,omitempty"`
	Answers       map[string]any `json:"answers,omitempty"`

	Stage                    string `json:"stage,omitempty"`
	CurrentInterviewStage    int    `json:"currentInterviewStage,omitempty"`
	CompletedInterviewStages int    `json:"completedInterviewStages,omitempty"`
	Active                   bool   `json:"active,omitempty"`

	References   []Reference             `json:"references,omitempty"`
	Availability []InterviewAvailability `json:"availability,omitempty"`

	Utime int64 `json:"utime,omitempty"`
}

type Reference struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

type InterviewAvailability struct {
	Date     string `json:"date,omitempty"`
	TimeSlot string `json:"timeSlot,omitempty"`
}

type SubmitReq struct {
	PositionID    int64          `json:"positionId"`
	ApplicantName string         `json:"applicantName"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	ResumeURL     string         `json:"resumeUrl"`
	CoverLetter   string         `json:"coverLetter"`
	Answers       map[string]any `json:"answers"`

	References   []Reference             `json:"references"`
	Availability []InterviewAvailability `json:"availability"`
}

type ListReq struct {
	Stage  string `json:"stage"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type OverrideStageReq struct {
	ID    int64  `json:"id"`
	Stage string `json:"stage"`
}

func (r SubmitReq) toDomain() domain.JobApplication {
	return domain.JobApplication{
		PositionID:       r.PositionID,
		ApplicantName:    r.ApplicantName,
		Email:            r.Email,
		Phone:            r.Phone,
		ResumeURL:        r.ResumeURL,
		CoverLetter:      r.CoverLetter,
		ScreeningAnswers: r.Answers,
		References: slice.Map(r.References, func(_ int, src Reference) domain.Reference {
			return domain.Reference{
				Name:         src.Name,
				Relationship: src.Relationship,
				Email:        src.Email,
				Phone:        src.Phone,
			}
		}),
		Availability: slice.Map(r.Availability, func(_ int, src InterviewAvailability) domain.InterviewAvailability {
			return domain.InterviewAvailability{
				Date:     src.Date,
				TimeSlot: src.TimeSlot,
			}
		}),
	}
}

func newJobApplication(app domain.JobApplication) JobApplication {
	return JobApplication{
		ID:                       app.ID,
		PositionID:               app.PositionID,
		ApplicantName:            app.ApplicantName,
		Email:                    app.Email,
		Phone:                    app.Phone,
		ResumeURL:                app.ResumeURL,
		CoverLetter:              app.CoverLetter,
		Answers:                  app.ScreeningAnswers,
		Stage:                    app.Stage.String(),
		CurrentInterviewStage:    app.CurrentInterviewStage,
		CompletedInterviewStages: app.CompletedInterviewStages,
		Active:                   app.Active,
		References: slice.Map(app.References, func(_ int, src domain.Reference) Reference {
			return Reference{
				Name:         src.Name,
				Relationship: src.Relationship,
				Email:        src.Email,
				Phone:        src.Phone,
			}
		}),
		Availability: slice.Map(app.Availability, func(_ int, src domain.InterviewAvailability) InterviewAvailability {
			return InterviewAvailability{
				Date:     src.Date,
				TimeSlot: src.TimeSlot,
			}
		}),
		Utime: app.Utime,
	}
}
