//go:build wireinject

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

var BaseSet = wire.NewSet(InitDB, InitMQ, initEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		tenant.InitModule,
		position.InitModule,
		application.InitModule,
		interview.InitModule,
		offer.InitModule,
		wire.FieldsOf(new(*offer.Module), "Job"),
		onboarding.InitModule,
		notification.InitModule,
		initGinxServer,
		initCronJobs)
	return new(App), nil
}
