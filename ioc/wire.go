//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/takeaway/internal/address"
	"github.com/ecodeclub/takeaway/internal/cart"
	"github.com/ecodeclub/takeaway/internal/catalog"
	"github.com/ecodeclub/takeaway/internal/notification"
	"github.com/ecodeclub/takeaway/internal/order"
	"github.com/ecodeclub/takeaway/internal/payment"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		catalog.InitModule,
		cart.InitModule,
		address.InitModule,
		notification.InitModule,
		payment.InitModule,
		order.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module),
			"Hdl", "AdminHdl",
			"CancelTimeoutOrdersJob", "CompleteDeliveringOrdersJob"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
