package ioc

import (
	"github.com/ecodeclub/hireflow/internal/notification"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web          *egin.Component
	Notification *notification.Module
	Crons        []ecron.Ecron
}
