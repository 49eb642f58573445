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

package tenant

import (
	"sync"

	"github.com/ecodeclub/hireflow/internal/tenant/internal/repository"
	"github.com/ecodeclub/hireflow/internal/tenant/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/tenant/internal/service"
	"github.com/ecodeclub/hireflow/internal/tenant/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitDistrictDAO,
	repository.NewDistrictRepository,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(ModuleSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitDistrictDAO(db *egorm.Component) dao.DistrictDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMDistrictDAO(db)
}
