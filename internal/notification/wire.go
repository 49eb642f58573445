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

//go:build wireinject

package notification

import (
	"github.com/ecodeclub/hireflow/internal/email"
	"github.com/ecodeclub/hireflow/internal/notification/internal/event"
	"github.com/ecodeclub/hireflow/internal/notification/internal/service"
	"github.com/ecodeclub/hireflow/internal/onboarding"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ModuleSet = wire.NewSet(
	initNotifier,
	event.NewApplicationConsumer,
	event.NewInterviewConsumer,
	event.NewOfferConsumer,
	event.NewOnboardingConsumer,
)

func InitModule(q mq.MQ, emailSvc email.Service, obModule *onboarding.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*onboarding.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initNotifier(svc email.Service) service.Notifier {
	return service.NewNotifier(svc, econf.GetString("email.fromAlias"))
}
