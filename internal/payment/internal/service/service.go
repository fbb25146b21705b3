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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/takeaway/internal/payment/internal/domain"
	"github.com/ecodeclub/takeaway/internal/payment/internal/event"
	"github.com/ecodeclub/takeaway/internal/payment/internal/repository"
	"github.com/ecodeclub/takeaway/internal/payment/internal/service/wechat"
	"github.com/ecodeclub/takeaway/internal/pkg/sequencenumber"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

var ErrAlreadyPaid = errors.New("订单已支付")

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -typed Service
type Service interface {
	// Prepay 为订单创建支付记录并向微信发起预支付, 重复调用会复用同一条支付记录,
	// 订单已经支付成功时返回 ErrAlreadyPaid
	Prepay(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	// HandleWechatCallback 处理微信支付结果通知, 落库之后发送支付事件,
	// 微信会对同一笔支付重复通知, 下游按订单号幂等消费
	HandleWechatCallback(ctx context.Context, txn *payments.Transaction) error
	FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
}

type service struct {
	repo     repository.PaymentRepository
	native   *wechat.NativePaymentService
	producer event.PaymentEventProducer
	snGen    *sequencenumber.Generator
}

func NewService(repo repository.PaymentRepository,
	native *wechat.NativePaymentService,
	producer event.PaymentEventProducer,
	snGen *sequencenumber.Generator) Service {
	return &service{
		repo:     repo,
		native:   native,
		producer: producer,
		snGen:    snGen,
	}
}

func (s *service) Prepay(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	sn, err := s.snGen.Generate(pmt.UID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("生成支付序列号失败: %w", err)
	}
	pmt.SN = sn
	pmt.Status = domain.PaymentStatusUnpaid
	created, err := s.repo.FindOrCreate(ctx, pmt)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("创建支付记录失败: %w", err)
	}
	if created.Status == domain.PaymentStatusPaidSuccess {
		return domain.Payment{}, fmt.Errorf("%w: order_sn=%s", ErrAlreadyPaid, created.OrderSN)
	}
	codeURL, err := s.native.Prepay(ctx, created)
	if err != nil {
		return domain.Payment{}, err
	}
	created.WechatCodeURL = codeURL
	return created, nil
}

func (s *service) HandleWechatCallback(ctx context.Context, txn *payments.Transaction) error {
	pmt, err := s.native.ConvertCallbackTransactionToDomain(txn)
	if err != nil {
		return err
	}
	err = s.repo.UpdateTxnIDAndStatus(ctx, pmt.OrderSN, pmt.TxnID, pmt.PaidAt, pmt.Status)
	if err != nil {
		return fmt.Errorf("更新支付状态失败: %w", err)
	}
	return s.producer.Produce(ctx, event.PaymentEvent{
		OrderSN: pmt.OrderSN,
		Status:  pmt.Status.ToUint8(),
	})
}

func (s *service) FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	return s.repo.FindByOrderSN(ctx, orderSN)
}
