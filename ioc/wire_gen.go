// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview"
	"github.com/ecodeclub/hireflow/internal/notification"
	"github.com/ecodeclub/hireflow/internal/offer"
	"github.com/ecodeclub/hireflow/internal/onboarding"
	"github.com/ecodeclub/hireflow/internal/position"
	"github.com/ecodeclub/hireflow/internal/tenant"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	db := InitDB()
	module, err := tenant.InitModule(db)
	if err != nil {
		return nil, err
	}
	positionModule, err := position.InitModule(db)
	if err != nil {
		return nil, err
	}
	mq := InitMQ()
	applicationModule, err := application.InitModule(db, mq, positionModule)
	if err != nil {
		return nil, err
	}
	interviewModule, err := interview.InitModule(db, mq, applicationModule, positionModule)
	if err != nil {
		return nil, err
	}
	offerModule, err := offer.InitModule(db, mq, applicationModule)
	if err != nil {
		return nil, err
	}
	onboardingModule, err := onboarding.InitModule(db, mq, applicationModule)
	if err != nil {
		return nil, err
	}
	component := initGinxServer(module, positionModule, applicationModule, interviewModule, offerModule, onboardingModule)
	service := initEmailService()
	notificationModule, err := notification.InitModule(mq, service, onboardingModule)
	if err != nil {
		return nil, err
	}
	expireOffersJob := offerModule.Job
	v := initCronJobs(expireOffersJob)
	app := &App{
		Web:          component,
		Notification: notificationModule,
		Crons:        v,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitMQ, initEmailService)
