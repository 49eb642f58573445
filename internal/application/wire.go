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

package application

import (
	"sync"

	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/ecodeclub/hireflow/internal/application/internal/web"
	"github.com/ecodeclub/hireflow/internal/position"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ModuleSet = wire.NewSet(
	InitApplicationDAO,
	repository.NewApplicationRepository,
	event.NewSubmittedEventProducer,
	event.NewStageChangedEventProducer,
	initService,
	web.NewHandler,
)

func InitModule(db *egorm.Component, q mq.MQ, posModule *position.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*position.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitApplicationDAO(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMApplicationDAO(db)
}

func initService(repo repository.ApplicationRepository,
	posSvc position.Service,
	submittedPrd event.SubmittedEventProducer,
	stageChgPrd event.StageChangedEventProducer) service.Service {
	return service.NewService(repo, posSvc, submittedPrd, stageChgPrd,
		econf.GetBool("hiring.allowStageOverride"))
}
