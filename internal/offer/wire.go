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

package offer

import (
	"sync"
	"time"

	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/offer/internal/event"
	"github.com/ecodeclub/hireflow/internal/offer/internal/job"
	"github.com/ecodeclub/hireflow/internal/offer/internal/repository"
	"github.com/ecodeclub/hireflow/internal/offer/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/offer/internal/service"
	"github.com/ecodeclub/hireflow/internal/offer/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitOfferDAO,
	repository.NewOfferRepository,
	event.NewOfferEventProducer,
	service.NewService,
	web.NewHandler,
	initExpireOffersJob,
)

func InitModule(db *egorm.Component, q mq.MQ, appModule *application.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*application.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitOfferDAO(db *egorm.Component) dao.OfferDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMOfferDAO(db)
}

func initExpireOffersJob(svc service.Service) *ExpireOffersJob {
	return job.NewExpireOffersJob(svc, 100, 30*time.Second)
}
