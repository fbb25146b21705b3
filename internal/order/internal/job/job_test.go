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

package job_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/takeaway/internal/order/internal/domain"
	"github.com/ecodeclub/takeaway/internal/order/internal/job"
	ordermocks "github.com/ecodeclub/takeaway/internal/order/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCancelTimeoutOrdersJob_Run(t *testing.T) {
	t.Parallel()

	t.Run("超过支付时限的订单被取消", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.StatusPendingPayment, gomock.Any(), 0, 10).
			DoAndReturn(func(ctx context.Context, status domain.OrderStatus, until int64, offset, limit int) ([]domain.Order, int64, error) {
				// 截止时间应该落在 15 分钟前附近
				expected := time.Now().Add(-15 * time.Minute).UnixMilli()
				assert.InDelta(t, expected, until, float64(time.Minute.Milliseconds()))
				return []domain.Order{
					{ID: 1, SN: "sn-1", Status: domain.StatusPendingPayment},
					{ID: 2, SN: "sn-2", Status: domain.StatusPendingPayment},
				}, 2, nil
			})
		svc.EXPECT().CancelTimeoutOrder(gomock.Any(), int64(1)).Return(nil)
		svc.EXPECT().CancelTimeoutOrder(gomock.Any(), int64(2)).Return(nil)

		j := job.NewCancelTimeoutOrdersJob(svc, 10, 15*time.Minute, time.Minute)
		assert.Equal(t, "CancelTimeoutOrdersJob", j.Name())
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("未到时限的订单不在扫描结果中_本轮无动作", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.StatusPendingPayment, gomock.Any(), 0, 10).
			Return(nil, int64(0), nil)

		j := job.NewCancelTimeoutOrdersJob(svc, 10, 15*time.Minute, time.Minute)
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("单个订单取消失败不影响其余订单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.StatusPendingPayment, gomock.Any(), 0, 10).
			Return([]domain.Order{
				{ID: 1, SN: "sn-1"},
				{ID: 2, SN: "sn-2"},
				{ID: 3, SN: "sn-3"},
			}, 3, nil)
		svc.EXPECT().CancelTimeoutOrder(gomock.Any(), int64(1)).Return(nil)
		// 2 号订单恰好被支付回调抢先
		svc.EXPECT().CancelTimeoutOrder(gomock.Any(), int64(2)).
			Return(errors.New("订单状态不允许该操作"))
		svc.EXPECT().CancelTimeoutOrder(gomock.Any(), int64(3)).Return(nil)

		j := job.NewCancelTimeoutOrdersJob(svc, 10, 15*time.Minute, time.Minute)
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("满页继续下一轮扫描", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		first := svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.StatusPendingPayment, gomock.Any(), 0, 2).
			Return([]domain.Order{{ID: 1}, {ID: 2}}, int64(3), nil)
		svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.StatusPendingPayment, gomock.Any(), 0, 2).
			Return([]domain.Order{{ID: 3}}, int64(1), nil).After(first.Call)
		svc.EXPECT().CancelTimeoutOrder(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		j := job.NewCancelTimeoutOrdersJob(svc, 2, 15*time.Minute, time.Minute)
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("扫描失败直接返回错误", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		mockErr := errors.New("数据库不可用")
		svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.StatusPendingPayment, gomock.Any(), 0, 10).
			Return(nil, int64(0), mockErr)

		j := job.NewCancelTimeoutOrdersJob(svc, 10, 15*time.Minute, time.Minute)
		assert.ErrorIs(t, j.Run(context.Background()), mockErr)
	})
}

func TestCompleteDeliveringOrdersJob_Run(t *testing.T) {
	t.Parallel()

	t.Run("派送超时订单被兜底完成", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.StatusDeliveryInProgress, gomock.Any(), 0, 10).
			Return([]domain.Order{
				{ID: 7, SN: "sn-7", Status: domain.StatusDeliveryInProgress},
			}, 1, nil)
		svc.EXPECT().CompleteDeliveringOrder(gomock.Any(), int64(7)).Return(nil)

		j := job.NewCompleteDeliveringOrdersJob(svc, 10, time.Hour, 5*time.Minute)
		assert.Equal(t, "CompleteDeliveringOrdersJob", j.Name())
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("单个订单失败不中断本轮", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		svc.EXPECT().FindTimeoutOrders(gomock.Any(), domain.StatusDeliveryInProgress, gomock.Any(), 0, 10).
			Return([]domain.Order{{ID: 7}, {ID: 8}}, 2, nil)
		svc.EXPECT().CompleteDeliveringOrder(gomock.Any(), int64(7)).
			Return(errors.New("订单状态不允许该操作"))
		svc.EXPECT().CompleteDeliveringOrder(gomock.Any(), int64(8)).Return(nil)

		j := job.NewCompleteDeliveringOrdersJob(svc, 10, time.Hour, 5*time.Minute)
		require.NoError(t, j.Run(context.Background()))
	})
}
