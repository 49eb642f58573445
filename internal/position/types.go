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

package position

import (
	"github.com/ecodeclub/hireflow/internal/position/internal/domain"
	"github.com/ecodeclub/hireflow/internal/position/internal/service"
	"github.com/ecodeclub/hireflow/internal/position/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler

// Service 同时供申请、面试模块做跨模块校验使用
type Service = service.Service

type Position = domain.Position

type InterviewStage = domain.InterviewStage

type Interviewer = domain.Interviewer

type ScreeningQuestion = domain.ScreeningQuestion

type JobTemplate = domain.JobTemplate

type Stats = service.Stats

const (
	StatusDraft  = domain.StatusDraft
	StatusOpen   = domain.StatusOpen
	StatusClosed = domain.StatusClosed
)
