// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package position

import (
	"github.com/ecodeclub/hireflow/internal/position/internal/repository"
	"github.com/ecodeclub/hireflow/internal/position/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/position/internal/service"
	"github.com/ecodeclub/hireflow/internal/position/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB) (*Module, error) {
	positionDAO := InitPositionDAO(db)
	positionRepository := repository.NewPositionRepository(positionDAO)
	serviceService := service.NewService(positionRepository)
	handler := web.NewHandler(serviceService)
	module := &Module{
		Svc: serviceService,
		Hdl: handler,
	}
	return module, nil
}

// wire.go:

var ModuleSet = wire.NewSet(
	InitPositionDAO, repository.NewPositionRepository, service.NewService, web.NewHandler,
)

var once = &sync.Once{}

func InitPositionDAO(db *egorm.Component) dao.PositionDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMPositionDAO(db)
}
