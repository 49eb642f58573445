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

package application

import (
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/ecodeclub/hireflow/internal/application/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler

// Service 面试与Offer模块通过它联动申请阶段
type Service = service.Service

type JobApplication = domain.JobApplication

type Stage = domain.Stage

const (
	StageApplicationReview   = domain.StageApplicationReview
	StageScreening           = domain.StageScreening
	StageInterview           = domain.StageInterview
	StageInterviewsCompleted = domain.StageInterviewsCompleted
	StageReferenceCheck      = domain.StageReferenceCheck
	StageOffer               = domain.StageOffer
	StageOfferAccepted       = domain.StageOfferAccepted
	StageRejected            = domain.StageRejected
)
