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

package position

import (
	"sync"

	"github.com/ecodeclub/hireflow/internal/position/internal/repository"
	"github.com/ecodeclub/hireflow/internal/position/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/position/internal/service"
	"github.com/ecodeclub/hireflow/internal/position/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitPositionDAO,
	repository.NewPositionRepository,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(ModuleSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitPositionDAO(db *egorm.Component) dao.PositionDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMPositionDAO(db)
}
