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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/takeaway/internal/order/internal/event"
	"github.com/ecodeclub/takeaway/internal/order/internal/service"
	"github.com/ecodeclub/takeaway/internal/payment"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentEventConsumer 消费支付结果, 支付事件至少投递一次,
// MarkOrderPaid 幂等, 所以重复消费是安全的
type PaymentEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentEventConsumer(svc service.Service, q mq.MQ) (*PaymentEventConsumer, error) {
	const groupID = "order"
	consumer, err := q.Consumer(event.PaymentEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费支付事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *PaymentEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt event.PaymentEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	if evt.Status != payment.StatusPaidSuccess.ToUint8() {
		// 支付失败的订单留给超时扫描兜底取消
		c.logger.Warn("忽略未支付成功的支付事件",
			elog.String("order_sn", evt.OrderSN),
			elog.Any("status", evt.Status))
		return nil
	}

	err = c.svc.MarkOrderPaid(ctx, evt.OrderSN)
	if err != nil {
		c.logger.Error("标记订单已支付失败",
			elog.FieldErr(err),
			elog.String("order_sn", evt.OrderSN))
	}
	return err
}
