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
	"github.com/ecodeclub/hireflow/internal/position/internal/domain"
)

type Position struct {
	ID          int64   `json:"id,omitempty"`
	ReqID       string  `json:"reqId,omitempty"`
	Title       string  `json:"title,omitempty"`
	Department  string  `json:"department,omitempty"`
	Worksite    string  `json:"worksite,omitempty"`
	FTE         float64 `json:"fte,omitempty"`
	SalaryRange string  `json:"salaryRange,omitempty"`
	StartDate   int64   `json:"startDate,omitempty"`
	Status      string  `json:"status,omitempty"`

	EmployeeCategory string `json:"employeeCategory,omitempty"`
	Description      string `json:"description,omitempty"`
	Requirements     string `json:"requirements,omitempty"`

	PostingStartDate int64 `json:"postingStartDate,omitempty"`
	PostingEndDate   int64 `json:"postingEndDate,omitempty"`

	InterviewStageCount int `json:"interviewStageCount,omitempty"`

	Stages    []InterviewStage    `json:"stages,omitempty"`
	Questions []ScreeningQuestion `json:"questions,omitempty"`

	Utime int64 `json:"utime,omitempty"`
}

type InterviewStage struct {
	ID          int64         `json:"id,omitempty"`
	StageNumber int           `json:"stageNumber,omitempty"`
	StageName   string        `json:"stageName,omitempty"`
	Panel       []Interviewer `json:"panel,omitempty"`
}

type Interviewer struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

type ScreeningQuestion struct {
	ID       int64  `json:"id,omitempty"`
	Question string `json:"question,omitempty"`
	Category string `json:"category,omitempty"`
	Required bool   `json:"required,omitempty"`
}

type JobTemplate struct {
	ID                  int64   `json:"id,omitempty"`
	TemplateName        string  `json:"templateName,omitempty"`
	PrimaryJobTitle     string  `json:"primaryJobTitle,omitempty"`
	Department          string  `json:"department,omitempty"`
	Worksite            string  `json:"worksite,omitempty"`
	FTE                 float64 `json:"fte,omitempty"`
	SalaryRange         string  `json:"salaryRange,omitempty"`
	EmployeeCategory    string  `json:"employeeCategory,omitempty"`
	InterviewStageCount int     `json:"interviewStageCount,omitempty"`
}

type SaveReq struct {
	Position Position `json:"position"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type PublicListReq struct {
	Search     string `json:"search"`
	Department string `json:"department"`
	Worksite   string `json:"worksite"`
}

type CreateFromTemplateReq struct {
	TemplateID       int64  `json:"templateId"`
	ReqID            string `json:"reqId"`
	PostingStartDate int64  `json:"postingStartDate"`
	PostingEndDate   int64  `json:"postingEndDate"`
}

type AddInterviewerReq struct {
	StageID int64  `json:"stageId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

type SaveQuestionReq struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Required bool   `json:"required"`
}

type ListQuestionsReq struct {
	Category string `json:"category"`
}

type BindQuestionsReq struct {
	PositionID  int64   `json:"positionId"`
	QuestionIDs []int64 `json:"questionIds"`
}

type SaveTemplateReq struct {
	Template JobTemplate `json:"template"`
}

type StatsResp struct {
	Draft  int64 `json:"draft"`
	Open   int64 `json:"open"`
	Closed int64 `json:"closed"`
}

func (p Position) toDomain(district int64) domain.Position {
	return domain.Position{
		ID:               p.ID,
		DistrictID:       district,
		ReqID:            p.ReqID,
		Title:            p.Title,
		Department:       p.Department,
		Worksite:         p.Worksite,
		FTE:              p.FTE,
		SalaryRange:      p.SalaryRange,
		StartDate:        p.StartDate,
		Status:           domain.Status(p.Status),
		EmployeeCategory: p.EmployeeCategory,
		Description:      p.Description,
		Requirements:     p.Requirements,
		PostingStartDate: p.PostingStartDate,
		PostingEndDate:   p.PostingEndDate,

		InterviewStageCount: p.InterviewStageCount,
		Stages: slice.Map(p.Stages, func(_ int, src InterviewStage) domain.InterviewStage {
			return domain.InterviewStage{
				ID:          src.ID,
				StageNumber: src.StageNumber,
				StageName:   src.StageName,
			}
		}),
	}
}

func newPosition(pos domain.Position) Position {
	return Position{
		ID:               pos.ID,
		ReqID:            pos.ReqID,
		Title:            pos.Title,
		Department:       pos.Department,
		Worksite:         pos.Worksite,
		FTE:              pos.FTE,
		SalaryRange:      pos.SalaryRange,
		StartDate:        pos.StartDate,
		Status:           pos.Status.String(),
		EmployeeCategory: pos.EmployeeCategory,
		Description:      pos.Description,
		Requirements:     pos.Requirements,
		PostingStartDate: pos.PostingStartDate,
		PostingEndDate:   pos.PostingEndDate,

		InterviewStageCount: pos.InterviewStageCount,
		Stages: slice.Map(pos.Stages, func(_ int, src domain.InterviewStage) InterviewStage {
			return newStage(src)
		}),
		Questions: slice.Map(pos.Questions, func(_ int, src domain.ScreeningQuestion) ScreeningQuestion {
			return newQuestion(src)
		}),
		Utime: pos.Utime,
	}
}

// newPublicPosition 公开招聘版视图，不暴露内部配置字段。
func newPublicPosition(pos domain.Position) Position {
	return Position{
		ID:               pos.ID,
		ReqID:            pos.ReqID,
		Title:            pos.Title,
		Department:       pos.Department,
		Worksite:         pos.Worksite,
		FTE:              pos.FTE,
		SalaryRange:      pos.SalaryRange,
		StartDate:        pos.StartDate,
		EmployeeCategory: pos.EmployeeCategory,
		Description:      pos.Description,
		Requirements:     pos.Requirements,
		PostingEndDate:   pos.PostingEndDate,
	}
}

func newStage(stage domain.InterviewStage) InterviewStage {
	return InterviewStage{
		ID:          stage.ID,
		StageNumber: stage.StageNumber,
		StageName:   stage.StageName,
		Panel: slice.Map(stage.Panel, func(_ int, src domain.Interviewer) Interviewer {
			return Interviewer{
				ID:    src.ID,
				Name:  src.Name,
				Email: src.Email,
				Role:  src.Role,
			}
		}),
	}
}

func newQuestion(q domain.ScreeningQuestion) ScreeningQuestion {
	return ScreeningQuestion{
		ID:       q.ID,
		Question: q.Question,
		Category: q.Category,
		Required: q.Required,
	}
}

func newTemplate(t domain.JobTemplate) JobTemplate {
	return JobTemplate{
		ID:                  t.ID,
		TemplateName:        t.TemplateName,
		PrimaryJobTitle:     t.PrimaryJobTitle,
		Department:          t.Department,
		Worksite:            t.Worksite,
		FTE:                 t.FTE,
		SalaryRange:         t.SalaryRange,
		EmployeeCategory:    t.EmployeeCategory,
		InterviewStageCount: t.InterviewStageCount,
	}
}
