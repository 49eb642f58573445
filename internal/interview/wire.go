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

package interview

import (
	"sync"

	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview/internal/event"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service"
	"github.com/ecodeclub/hireflow/internal/interview/internal/web"
	"github.com/ecodeclub/hireflow/internal/position"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitInterviewDAO,
	repository.NewInterviewRepository,
	event.NewScheduledEventProducer,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component, q mq.MQ,
	appModule *application.Module, posModule *position.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*application.Module), "Svc"),
		wire.FieldsOf(new(*position.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitInterviewDAO(db *egorm.Component) dao.InterviewDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMInterviewDAO(db)
}
