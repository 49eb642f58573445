// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package notification

import (
	"github.com/ecodeclub/hireflow/internal/email"
	"github.com/ecodeclub/hireflow/internal/notification/internal/event"
	"github.com/ecodeclub/hireflow/internal/notification/internal/service"
	"github.com/ecodeclub/hireflow/internal/onboarding"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

// Injectors from wire.go:

func InitModule(q mq.MQ, emailSvc email.Service, obModule *onboarding.Module) (*Module, error) {
	notifier := initNotifier(emailSvc)
	applicationConsumer, err := event.NewApplicationConsumer(notifier, q)
	if err != nil {
		return nil, err
	}
	interviewConsumer, err := event.NewInterviewConsumer(notifier, q)
	if err != nil {
		return nil, err
	}
	offerConsumer, err := event.NewOfferConsumer(notifier, q)
	if err != nil {
		return nil, err
	}
	service := obModule.Svc
	onboardingConsumer, err := event.NewOnboardingConsumer(notifier, service, q)
	if err != nil {
		return nil, err
	}
	module := &Module{
		AppConsumer:        applicationConsumer,
		InterviewConsumer:  interviewConsumer,
		OfferConsumer:      offerConsumer,
		OnboardingConsumer: onboardingConsumer,
	}
	return module, nil
}

// wire.go:

var ModuleSet = wire.NewSet(
	initNotifier, event.NewApplicationConsumer, event.NewInterviewConsumer, event.NewOfferConsumer, event.NewOnboardingConsumer,
)

func initNotifier(svc email.Service) service.Notifier {
	return service.NewNotifier(svc, econf.GetString("email.fromAlias"))
}
