// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package tenant

import (
	"github.com/ecodeclub/hireflow/internal/tenant/internal/repository"
	"github.com/ecodeclub/hireflow/internal/tenant/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/tenant/internal/service"
	"github.com/ecodeclub/hireflow/internal/tenant/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB) (*Module, error) {
	districtDAO := InitDistrictDAO(db)
	districtRepository := repository.NewDistrictRepository(districtDAO)
	serviceService := service.NewService(districtRepository)
	handler := web.NewHandler(serviceService)
	module := &Module{
		Svc: serviceService,
		Hdl: handler,
	}
	return module, nil
}

// wire.go:

var ModuleSet = wire.NewSet(
	InitDistrictDAO, repository.NewDistrictRepository, service.NewService, web.NewHandler,
)

var once = &sync.Once{}

func InitDistrictDAO(db *egorm.Component) dao.DistrictDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMDistrictDAO(db)
}
