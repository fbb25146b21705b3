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

package order

import (
	"github.com/ecodeclub/takeaway/internal/order/internal/domain"
	"github.com/ecodeclub/takeaway/internal/order/internal/event/consumer"
	"github.com/ecodeclub/takeaway/internal/order/internal/job"
	"github.com/ecodeclub/takeaway/internal/order/internal/service"
	"github.com/ecodeclub/takeaway/internal/order/internal/web"
)

type (
	Order                       = domain.Order
	OrderItem                   = domain.OrderItem
	OrderStatus                 = domain.OrderStatus
	Service                     = service.Service
	Handler                     = web.Handler
	AdminHandler                = web.AdminHandler
	PaymentEventConsumer        = consumer.PaymentEventConsumer
	CancelTimeoutOrdersJob      = job.CancelTimeoutOrdersJob
	CompleteDeliveringOrdersJob = job.CompleteDeliveringOrdersJob
)

const (
	StatusPendingPayment     = domain.StatusPendingPayment
	StatusToBeConfirmed      = domain.StatusToBeConfirmed
	StatusConfirmed          = domain.StatusConfirmed
	StatusDeliveryInProgress = domain.StatusDeliveryInProgress
	StatusCompleted          = domain.StatusCompleted
	StatusCancelled          = domain.StatusCancelled
)

var (
	ErrEmptyCart              = service.ErrEmptyCart
	ErrAddressNotFound        = service.ErrAddressNotFound
	ErrUnknownOrder           = service.ErrUnknownOrder
	ErrInvalidStateTransition = service.ErrInvalidStateTransition
)

type Module struct {
	Svc                         Service
	Hdl                         *Handler
	AdminHdl                    *AdminHandler
	Consumer                    *PaymentEventConsumer
	CancelTimeoutOrdersJob      *CancelTimeoutOrdersJob
	CompleteDeliveringOrdersJob *CompleteDeliveringOrdersJob
}
