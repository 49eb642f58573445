// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package offer

import (
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
	"gorm.io/gorm"
	"sync"
	"time"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, q mq.MQ, appModule *application.Module) (*Module, error) {
	offerDAO := InitOfferDAO(db)
	offerRepository := repository.NewOfferRepository(offerDAO)
	serviceService := appModule.Svc
	offerEventProducer, err := event.NewOfferEventProducer(q)
	if err != nil {
		return nil, err
	}
	service2 := service.NewService(offerRepository, serviceService, offerEventProducer)
	handler := web.NewHandler(service2)
	expireOffersJob := initExpireOffersJob(service2)
	module := &Module{
		Svc: service2,
		Hdl: handler,
		Job: expireOffersJob,
	}
	return module, nil
}

// wire.go:

var ModuleSet = wire.NewSet(
	InitOfferDAO, repository.NewOfferRepository, event.NewOfferEventProducer, service.NewService, web.NewHandler, initExpireOffersJob,
)

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
