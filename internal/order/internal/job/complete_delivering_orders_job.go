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

// CompleteDeliveringOrdersJob 兜底任务, 把长时间停留在派送中的订单标记为已完成
type CompleteDeliveringOrdersJob struct {
	svc             service.Service
	limit           int
	deliveryTimeout time.Duration
	timeout         time.Duration
	logger          *elog.Component
}

func NewCompleteDeliveringOrdersJob(svc service.Service, limit int, deliveryTimeout, timeout time.Duration) *CompleteDeliveringOrdersJob {
	return &CompleteDeliveringOrdersJob{
		svc:             svc,
		limit:           limit,
		deliveryTimeout: deliveryTimeout,
		timeout:         timeout,
		logger:          elog.DefaultLogger,
	}
}

func (c *CompleteDeliveringOrdersJob) Name() string {
	return "CompleteDeliveringOrdersJob"
}

func (c *CompleteDeliveringOrdersJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	until := time.Now().Add(-c.deliveryTimeout).UnixMilli()

	for {
		orders, total, err := c.svc.FindTimeoutOrders(ctx, domain.StatusDeliveryInProgress, until, 0, c.limit)
		if err != nil {
			return fmt.Errorf("获取派送超时订单失败: %w", err)
		}

		for _, order := range orders {
			if er := c.svc.CompleteDeliveringOrder(ctx, order.ID); er != nil {
				c.logger.Warn("兜底完成派送中订单失败",
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
