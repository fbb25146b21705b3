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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/takeaway/internal/order/internal/domain"
	"github.com/ecodeclub/takeaway/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// CancelTimeoutOrdersJob 扫描超过支付时限仍未支付的订单并逐个取消,
// 单个订单失败不影响本轮其余订单
type CancelTimeoutOrdersJob struct {
	svc            service.Service
	limit          int
	paymentTimeout time.Duration
	timeout        time.Duration
	logger         *elog.Component
}

func NewCancelTimeoutOrdersJob(svc service.Service, limit int, paymentTimeout, timeout time.Duration) *CancelTimeoutOrdersJob {
	return &CancelTimeoutOrdersJob{
		svc:            svc,
		limit:          limit,
		paymentTimeout: paymentTimeout,
		timeout:        timeout,
		logger:         elog.DefaultLogger,
	}
}

func (c *CancelTimeoutOrdersJob) Name() string {
	return "CancelTimeoutOrdersJob"
}

func (c *CancelTimeoutOrdersJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	until := time.Now().Add(-c.paymentTimeout).UnixMilli()

	for {
		orders, total, err := c.svc.FindTimeoutOrders(ctx, domain.StatusPendingPayment, until, 0, c.limit)
		if err != nil {
			return fmt.Errorf("获取超时未支付订单失败: %w", err)
		}

		for _, order := range orders {
			// 超时订单和并发的支付回调只会有一方成功
			if er := c.svc.CancelTimeoutOrder(ctx, order.ID); er != nil {
				c.logger.Warn("取消超时订单失败",
					elog.Int64("order_id", order.ID),
					elog.String("order_sn", order.SN),
					elog.FieldErr(er))
			}
		}

		if len(orders) < c.limit {
			break
		}
		if int64(c.limit) >= total {
			break
		}
	}
	return nil
}
