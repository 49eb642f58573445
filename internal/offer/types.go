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

package offer

import (
	"github.com/ecodeclub/hireflow/internal/offer/internal/domain"
	"github.com/ecodeclub/hireflow/internal/offer/internal/job"
	"github.com/ecodeclub/hireflow/internal/offer/internal/service"
	"github.com/ecodeclub/hireflow/internal/offer/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
	Job *ExpireOffersJob
}

type Handler = web.Handler

type Service = service.Service

type ExpireOffersJob = job.ExpireOffersJob

type Offer = domain.Offer

type OfferTemplate = domain.OfferTemplate

type HiredEmployee = domain.HiredEmployee

type Status = domain.Status

const (
	StatusPending   = domain.StatusPending
	StatusAccepted  = domain.StatusAccepted
	StatusDeclined  = domain.StatusDeclined
	StatusExpired   = domain.StatusExpired
	StatusWithdrawn = domain.StatusWithdrawn
)
