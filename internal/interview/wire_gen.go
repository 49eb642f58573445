// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package interview

import (
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
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ, appModule *application.Module, posModule *position.Module) (*Module, error) {
	interviewDAO := InitInterviewDAO(db)
	interviewRepository := repository.NewInterviewRepository(interviewDAO)
	serviceService := appModule.Svc
	service2 := posModule.Svc
	scheduledEventProducer, err := event.NewScheduledEventProducer(q)
	if err != nil {
		return nil, err
	}
	service3 := service.NewService(interviewRepository, serviceService, service2, scheduledEventProducer)
	handler := web.NewHandler(service3)
	module := &Module{
		Svc: service3,
		Hdl: handler,
	}
	return module, nil
}

// wire.go:

var ModuleSet = wire.NewSet(
	InitInterviewDAO, repository.NewInterviewRepository, event.NewScheduledEventProducer, service.NewService, web.NewHandler,
)

var once = &sync.Once{}

func InitInterviewDAO(db *egorm.Component) dao.InterviewDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMInterviewDAO(db)
}
