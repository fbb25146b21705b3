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

package wechat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/takeaway/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
)

var (
	errUnknownTransactionState = errors.New("未知的微信事务状态")
	errIgnoredPaymentStatus    = errors.New("忽略的支付状态")
)

//go:generate mockgen -source=./native.go -package=wechatmocks -destination=./mocks/native.mock.go -typed NativeAPIService
type NativeAPIService interface {
	Prepay(ctx context.Context, req native.PrepayRequest) (resp *native.PrepayResponse, result *core.APIResult, err error)
}

type NativePaymentService struct {
	svc NativeAPIService
	l   *elog.Component

	appID     string
	mchID     string
	notifyURL string
	// 外卖场景只关心终态, 中间态的回调直接忽略,
	// 等微信重试或者用户支付完成之后的下一次回调
	nativeCallbackTypeToPaymentStatus map[string]domain.PaymentStatus
}

func NewNativePaymentService(svc NativeAPIService, appID, mchID, notifyURL string) *NativePaymentService {
	return &NativePaymentService{
		svc:       svc,
		l:         elog.DefaultLogger,
		appID:     appID,
		mchID:     mchID,
		notifyURL: notifyURL,
		nativeCallbackTypeToPaymentStatus: map[string]domain.PaymentStatus{
			"SUCCESS":    domain.PaymentStatusPaidSuccess,
			"PAYERROR":   domain.PaymentStatusPaidFailed,
			"CLOSED":     domain.PaymentStatusPaidFailed,
			"REVOKED":    domain.PaymentStatusPaidFailed,
			"NOTPAY":     domain.PaymentStatusUnpaid,
			"USERPAYING": domain.PaymentStatusProcessing,
		},
	}
}

// Prepay 向微信发起预支付, 返回用户扫码用的 code url
func (n *NativePaymentService) Prepay(ctx context.Context, pmt domain.Payment) (string, error) {
	if pmt.TotalAmount <= 0 {
		return "", fmt.Errorf("支付金额非法: %d", pmt.TotalAmount)
	}
	resp, _, err := n.svc.Prepay(ctx,
		native.PrepayRequest{
			Appid:       core.String(n.appID),
			Mchid:       core.String(n.mchID),
			Description: core.String(pmt.OrderDescription),
			OutTradeNo:  core.String(pmt.OrderSN),
			TimeExpire:  core.Time(time.Now().Add(time.Minute * 15)),
			NotifyUrl:   core.String(n.notifyURL),
			Amount: &native.Amount{
				Currency: core.String("CNY"),
				Total:    core.Int64(pmt.TotalAmount),
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("微信预支付失败: %w", err)
	}
	return *resp.CodeUrl, nil
}

// ConvertCallbackTransactionToDomain 把微信回调里的事务转成本地支付,
// 非终态的回调以 errIgnoredPaymentStatus 拒绝
func (n *NativePaymentService) ConvertCallbackTransactionToDomain(txn *payments.Transaction) (domain.Payment, error) {
	status, ok := n.nativeCallbackTypeToPaymentStatus[*txn.TradeState]
	if !ok {
		return domain.Payment{}, fmt.Errorf("%w: %s", errUnknownTransactionState, *txn.TradeState)
	}
	if status != domain.PaymentStatusPaidSuccess && status != domain.PaymentStatusPaidFailed {
		n.l.Warn("忽略的微信支付通知状态",
			elog.String("TradeState", *txn.TradeState),
			elog.Any("PaymentStatus", status),
		)
		return domain.Payment{}, fmt.Errorf("%w: %d", errIgnoredPaymentStatus, status.ToUint8())
	}
	var paidAt int64
	if status == domain.PaymentStatusPaidSuccess {
		paidAt = time.Now().UnixMilli()
	}
	return domain.Payment{
		OrderSN: *txn.OutTradeNo,
		TxnID:   *txn.TransactionId,
		PaidAt:  paidAt,
		Status:  status,
	}, nil
}
