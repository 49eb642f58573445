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

package onboarding

import (
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/service"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler

// Service 通知模块通过它回写邮件发送结果
type Service = service.Service

type Actor = service.Actor

type Candidate = domain.Candidate

type Section = domain.Section

type Document = domain.Document

type AuditLog = domain.AuditLog

type EmailLog = domain.EmailLog

type Status = domain.Status

const (
	StatusNotStarted = domain.StatusNotStarted
	StatusInProgress = domain.StatusInProgress
	StatusCompleted  = domain.StatusCompleted
	StatusSubmitted  = domain.StatusSubmitted
)

const (
	EmailInvitation  = domain.EmailInvitation
	EmailReminder    = domain.EmailReminder
	EmailSubmission  = domain.EmailSubmission
	EmailAdminNotice = domain.EmailAdminNotice
)
