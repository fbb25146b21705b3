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
	"testing"
	"time"

	"github.com/ecodeclub/takeaway/internal/payment/internal/domain"
	wechatmocks "github.com/ecodeclub/takeaway/internal/payment/internal/service/wechat/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"go.uber.org/mock/gomock"
)

func newTestPaymentService(api NativeAPIService) *NativePaymentService {
	return NewNativePaymentService(api, "test-app-id", "test-mch-id", "https://example.com/pay/callback")
}

func TestNativePaymentService_Prepay(t *testing.T) {
	t.Parallel()

	t.Run("预支付成功返回CodeUrl", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		api := wechatmocks.NewMockNativeAPIService(ctrl)

		api.EXPECT().Prepay(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req native.PrepayRequest) (*native.PrepayResponse, *core.APIResult, error) {
				assert.Equal(t, "test-app-id", *req.Appid)
				assert.Equal(t, "test-mch-id", *req.Mchid)
				assert.Equal(t, "order-sn-1", *req.OutTradeNo)
				assert.Equal(t, "外卖订单", *req.Description)
				assert.Equal(t, int64(10100), *req.Amount.Total)
				assert.Equal(t, "CNY", *req.Amount.Currency)
				// 预支付单 15 分钟后过期
				assert.WithinDuration(t, time.Now().Add(15*time.Minute), *req.TimeExpire, time.Minute)
				return &native.PrepayResponse{CodeUrl: core.String("weixin://wxpay/bizpayurl?pr=abc")}, nil, nil
			})

		svc := newTestPaymentService(api)
		codeURL, err := svc.Prepay(context.Background(), domain.Payment{
			OrderSN:          "order-sn-1",
			OrderDescription: "外卖订单",
			TotalAmount:      10100,
		})
		require.NoError(t, err)
		assert.Equal(t, "weixin://wxpay/bizpayurl?pr=abc", codeURL)
	})

	t.Run("金额非法直接拒绝", func(t *testing.T) {
		t.Parallel()
		svc := newTestPaymentService(nil)
		_, err := svc.Prepay(context.Background(), domain.Payment{
			OrderSN:     "order-sn-1",
			TotalAmount: 0,
		})
		assert.Error(t, err)
	})
}

func TestNativePaymentService_ConvertCallbackTransactionToDomain(t *testing.T) {
	t.Parallel()

	svc := newTestPaymentService(nil)

	t.Run("支付成功", func(t *testing.T) {
		t.Parallel()
		pmt, err := svc.ConvertCallbackTransactionToDomain(&payments.Transaction{
			OutTradeNo:    core.String("order-sn-1"),
			TransactionId: core.String("wx-txn-1"),
			TradeState:    core.String("SUCCESS"),
		})
		require.NoError(t, err)
		assert.Equal(t, "order-sn-1", pmt.OrderSN)
		assert.Equal(t, "wx-txn-1", pmt.TxnID)
		assert.Equal(t, domain.PaymentStatusPaidSuccess, pmt.Status)
		assert.NotZero(t, pmt.PaidAt)
	})

	t.Run("支付失败的终态", func(t *testing.T) {
		t.Parallel()
		for _, state := range []string{"PAYERROR", "CLOSED", "REVOKED"} {
			pmt, err := svc.ConvertCallbackTransactionToDomain(&payments.Transaction{
				OutTradeNo:    core.String("order-sn-1"),
				TransactionId: core.String("wx-txn-1"),
				TradeState:    core.String(state),
			})
			require.NoError(t, err, state)
			assert.Equal(t, domain.PaymentStatusPaidFailed, pmt.Status, state)
			assert.Zero(t, pmt.PaidAt, state)
		}
	})

	t.Run("中间态被忽略", func(t *testing.T) {
		t.Parallel()
		for _, state := range []string{"NOTPAY", "USERPAYING"} {
			_, err := svc.ConvertCallbackTransactionToDomain(&payments.Transaction{
				OutTradeNo:    core.String("order-sn-1"),
				TransactionId: core.String("wx-txn-1"),
				TradeState:    core.String(state),
			})
			assert.ErrorIs(t, err, errIgnoredPaymentStatus, state)
		}
	})

	t.Run("未知状态", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ConvertCallbackTransactionToDomain(&payments.Transaction{
			OutTradeNo:    core.String("order-sn-1"),
			TransactionId: core.String("wx-txn-1"),
			TradeState:    core.String("SOMETHING_ELSE"),
		})
		assert.ErrorIs(t, err, errUnknownTransactionState)
	})
}
