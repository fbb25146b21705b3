// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/takeaway/internal/address"
	"github.com/ecodeclub/takeaway/internal/cart"
	"github.com/ecodeclub/takeaway/internal/notification"
	"github.com/ecodeclub/takeaway/internal/order/internal/event"
	"github.com/ecodeclub/takeaway/internal/order/internal/event/consumer"
	"github.com/ecodeclub/takeaway/internal/order/internal/job"
	"github.com/ecodeclub/takeaway/internal/order/internal/repository"
	"github.com/ecodeclub/takeaway/internal/order/internal/repository/dao"
	"github.com/ecodeclub/takeaway/internal/order/internal/service"
	"github.com/ecodeclub/takeaway/internal/order/internal/web"
	"github.com/ecodeclub/takeaway/internal/payment"
	"github.com/ecodeclub/takeaway/internal/pkg/sequencenumber"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	cache ecache.Cache,
	cartModule *cart.Module,
	addressModule *address.Module,
	paymentModule *payment.Module,
	notificationModule *notification.Module) (*Module, error) {
	wire.Build(wire.Struct(
		new(Module), "*"),
		InitTablesOnce,
		repository.NewRepository,
		sequencenumber.NewGenerator,
		event.NewOrderEventProducer,
		consumer.NewPaymentEventConsumer,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		initCancelTimeoutOrdersJob,
		initCompleteDeliveringOrdersJob,
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.FieldsOf(new(*address.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "Svc"),
		wire.FieldsOf(new(*notification.Module), "Bus"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initCancelTimeoutOrdersJob(svc service.Service) *job.CancelTimeoutOrdersJob {
	paymentTimeout := econf.GetDuration("order.paymentTimeout")
	if paymentTimeout <= 0 {
		paymentTimeout = 15 * time.Minute
	}
	return job.NewCancelTimeoutOrdersJob(svc, 100, paymentTimeout, time.Minute)
}

func initCompleteDeliveringOrdersJob(svc service.Service) *job.CompleteDeliveringOrdersJob {
	deliveryTimeout := econf.GetDuration("order.deliveryTimeout")
	if deliveryTimeout <= 0 {
		deliveryTimeout = time.Hour
	}
	return job.NewCompleteDeliveringOrdersJob(svc, 100, deliveryTimeout, 5*time.Minute)
}
