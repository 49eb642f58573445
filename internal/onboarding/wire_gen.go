// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package onboarding

import (
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/event"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/repository"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/service"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ, appModule *application.Module) (*Module, error) {
	onboardingDAO := InitOnboardingDAO(db)
	onboardingRepository := repository.NewOnboardingRepository(onboardingDAO)
	serviceService := appModule.Svc
	onboardingEventProducer, err := event.NewOnboardingEventProducer(q)
	if err != nil {
		return nil, err
	}
	service2 := service.NewService(onboardingRepository, serviceService, onboardingEventProducer)
	handler := web.NewHandler(service2)
	module := &Module{
		Svc: service2,
		Hdl: handler,
	}
	return module, nil
}

// wire.go:

var ModuleSet = wire.NewSet(
	InitOnboardingDAO, repository.NewOnboardingRepository, event.NewOnboardingEventProducer, service.NewService, web.NewHandler,
)

var once = &sync.Once{}

func InitOnboardingDAO(db *egorm.Component) dao.OnboardingDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMOnboardingDAO(db)
}
