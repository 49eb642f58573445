// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package application

import (
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
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ, posModule *position.Module) (*Module, error) {
	applicationDAO := InitApplicationDAO(db)
	applicationRepository := repository.NewApplicationRepository(applicationDAO)
	service := posModule.Svc
	submittedEventProducer, err := event.NewSubmittedEventProducer(q)
	if err != nil {
		return nil, err
	}
	stageChangedEventProducer, err := event.NewStageChangedEventProducer(q)
	if err != nil {
		return nil, err
	}
	serviceService := initService(applicationRepository, service, submittedEventProducer, stageChangedEventProducer)
	handler := web.NewHandler(serviceService)
	module := &Module{
		Svc: serviceService,
		Hdl: handler,
	}
	return module, nil
}

// wire.go:

var ModuleSet = wire.NewSet(
	InitApplicationDAO, repository.NewApplicationRepository, event.NewSubmittedEventProducer, event.NewStageChangedEventProducer, initService, web.NewHandler,
)

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
	return service.NewService(repo, posSvc, submittedPrd, stageChgPrd, econf.GetBool("hiring.allowStageOverride"))
}
