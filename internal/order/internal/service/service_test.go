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

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/takeaway/internal/address"
	addressmocks "github.com/ecodeclub/takeaway/internal/address/mocks"
	"github.com/ecodeclub/takeaway/internal/cart"
	cartmocks "github.com/ecodeclub/takeaway/internal/cart/mocks"
	"github.com/ecodeclub/takeaway/internal/notification"
	notificationmocks "github.com/ecodeclub/takeaway/internal/notification/mocks"
	"github.com/ecodeclub/takeaway/internal/order/internal/domain"
	"github.com/ecodeclub/takeaway/internal/order/internal/event"
	evtmocks "github.com/ecodeclub/takeaway/internal/order/internal/event/mocks"
	"github.com/ecodeclub/takeaway/internal/order/internal/repository/dao"
	repomocks "github.com/ecodeclub/takeaway/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/takeaway/internal/order/internal/service"
	"github.com/ecodeclub/takeaway/internal/pkg/sequencenumber"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testUID = int64(12345)

func newTestGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGeneratorWith(
		func(t time.Time) int64 { return 1700000000000 },
		func() string { return "JwWeYjsVTvCvfRmGsdzXcN" })
}

type testMocks struct {
	repo       *repomocks.MockOrderRepository
	cartSvc    *cartmocks.MockService
	addressSvc *addressmocks.MockService
	bus        *notificationmocks.MockBus
	producer   *evtmocks.MockOrderEventProducer
}

func newTestService(ctrl *gomock.Controller) (service.Service, testMocks) {
	m := testMocks{
		repo:       repomocks.NewMockOrderRepository(ctrl),
		cartSvc:    cartmocks.NewMockService(ctrl),
		addressSvc: addressmocks.NewMockService(ctrl),
		bus:        notificationmocks.NewMockBus(ctrl),
		producer:   evtmocks.NewMockOrderEventProducer(ctrl),
	}
	svc := service.NewService(m.repo, m.cartSvc, m.addressSvc, m.bus, m.producer, newTestGenerator())
	return svc, m
}

func TestService_SubmitOrder(t *testing.T) {
	t.Parallel()

	t.Run("下单成功_金额累加_购物车随事务清空", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.addressSvc.EXPECT().FindByIDAndUID(gomock.Any(), testUID, int64(7)).
			Return(address.Address{
				ID:        7,
				UID:       testUID,
				Consignee: "张三",
				Phone:     "13800001234",
				Detail:    "北京市朝阳区某某路1号",
			}, nil)
		m.cartSvc.EXPECT().List(gomock.Any(), testUID).Return([]cart.CartLine{
			{ID: 1, DishID: 11, Name: "宫保鸡丁", Flavor: "微辣", Price: 2800, Quantity: 2},
			{ID: 2, SetmealID: 21, Name: "商务套餐A", Price: 4500, Quantity: 1},
		}, nil)
		m.cartSvc.EXPECT().ClearTx(gomock.Any(), testUID).Return(nil)
		m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, order domain.Order, clearCart func(tx *egorm.Component) error) (domain.Order, error) {
				assert.Equal(t, testUID, order.UID)
				assert.Equal(t, domain.StatusPendingPayment, order.Status)
				assert.Equal(t, domain.PayStatusUnpaid, order.PayStatus)
				// 2800*2 + 4500*1
				assert.Equal(t, int64(10100), order.Amount)
				assert.Equal(t, "张三", order.Consignee)
				assert.Len(t, order.Items, 2)
				assert.Equal(t, int64(11), order.Items[0].DishID)
				assert.Equal(t, int64(21), order.Items[1].SetmealID)
				// 清空购物车必须发生在下单事务内
				require.NoError(t, clearCart(nil))
				order.ID = 100
				return order, nil
			})

		created, err := svc.SubmitOrder(context.Background(), testUID, 7, "不要香菜")
		require.NoError(t, err)
		assert.Equal(t, int64(100), created.ID)
		assert.Len(t, created.SN, 32)
		assert.NotZero(t, created.Ctime)
	})

	t.Run("购物车为空", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.addressSvc.EXPECT().FindByIDAndUID(gomock.Any(), testUID, int64(7)).
			Return(address.Address{ID: 7, UID: testUID}, nil)
		m.cartSvc.EXPECT().List(gomock.Any(), testUID).Return(nil, nil)

		_, err := svc.SubmitOrder(context.Background(), testUID, 7, "")
		assert.ErrorIs(t, err, service.ErrEmptyCart)
	})

	t.Run("地址不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.addressSvc.EXPECT().FindByIDAndUID(gomock.Any(), testUID, int64(404)).
			Return(address.Address{}, address.ErrAddressNotFound)

		_, err := svc.SubmitOrder(context.Background(), testUID, 404, "")
		assert.ErrorIs(t, err, service.ErrAddressNotFound)
	})
}

func TestService_MarkOrderPaid(t *testing.T) {
	t.Parallel()

	const sn = "17000000000002345JwWeYjsVTvCvfR"

	t.Run("对账成功_通知商家端并投递事件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindBySN(gomock.Any(), sn).Return(domain.Order{
			ID:        100,
			SN:        sn,
			UID:       testUID,
			Status:    domain.StatusPendingPayment,
			PayStatus: domain.PayStatusUnpaid,
		}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100),
			domain.StatusPendingPayment, domain.StatusToBeConfirmed, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id int64, from, to domain.OrderStatus, extra map[string]any) error {
				assert.Equal(t, domain.PayStatusPaid.ToUint8(), extra["pay_status"])
				assert.NotZero(t, extra["paid_at"])
				return nil
			})
		m.bus.EXPECT().Broadcast(gomock.Any(), notification.Event{
			Type:    notification.EventTypeOrderPlaced,
			OrderID: 100,
			Content: "订单号: " + sn,
		}).Return(nil)
		m.producer.EXPECT().Produce(gomock.Any(), event.OrderEvent{
			OrderSN: sn,
			Status:  domain.StatusToBeConfirmed.ToUint8(),
		}).Return(nil)

		require.NoError(t, svc.MarkOrderPaid(context.Background(), sn))
	})

	t.Run("重复回调幂等_不重复通知", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindBySN(gomock.Any(), sn).Return(domain.Order{
			ID:        100,
			SN:        sn,
			Status:    domain.StatusToBeConfirmed,
			PayStatus: domain.PayStatusPaid,
		}, nil)

		require.NoError(t, svc.MarkOrderPaid(context.Background(), sn))
	})

	t.Run("并发冲突后确认已支付_按幂等处理", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindBySN(gomock.Any(), sn).Return(domain.Order{
			ID:        100,
			SN:        sn,
			Status:    domain.StatusPendingPayment,
			PayStatus: domain.PayStatusUnpaid,
		}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100),
			domain.StatusPendingPayment, domain.StatusToBeConfirmed, gomock.Any()).
			Return(dao.ErrStateConflict)
		m.repo.EXPECT().FindBySN(gomock.Any(), sn).Return(domain.Order{
			ID:        100,
			SN:        sn,
			Status:    domain.StatusToBeConfirmed,
			PayStatus: domain.PayStatusPaid,
		}, nil)

		require.NoError(t, svc.MarkOrderPaid(context.Background(), sn))
	})

	t.Run("并发冲突且未支付_订单已被超时取消", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindBySN(gomock.Any(), sn).Return(domain.Order{
			ID:        100,
			SN:        sn,
			Status:    domain.StatusPendingPayment,
			PayStatus: domain.PayStatusUnpaid,
		}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100),
			domain.StatusPendingPayment, domain.StatusToBeConfirmed, gomock.Any()).
			Return(dao.ErrStateConflict)
		m.repo.EXPECT().FindBySN(gomock.Any(), sn).Return(domain.Order{
			ID:        100,
			SN:        sn,
			Status:    domain.StatusCancelled,
			PayStatus: domain.PayStatusRefunded,
		}, nil)

		err := svc.MarkOrderPaid(context.Background(), sn)
		assert.ErrorIs(t, err, service.ErrInvalidStateTransition)
	})

	t.Run("订单不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindBySN(gomock.Any(), sn).
			Return(domain.Order{}, gorm.ErrRecordNotFound)

		err := svc.MarkOrderPaid(context.Background(), sn)
		assert.ErrorIs(t, err, service.ErrUnknownOrder)
	})

	t.Run("通知失败不影响对账结果", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindBySN(gomock.Any(), sn).Return(domain.Order{
			ID:        100,
			SN:        sn,
			Status:    domain.StatusPendingPayment,
			PayStatus: domain.PayStatusUnpaid,
		}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100),
			domain.StatusPendingPayment, domain.StatusToBeConfirmed, gomock.Any()).
			Return(nil)
		m.bus.EXPECT().Broadcast(gomock.Any(), gomock.Any()).
			Return(errors.New("连接已断开"))
		m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
			Return(errors.New("消息队列不可用"))

		require.NoError(t, svc.MarkOrderPaid(context.Background(), sn))
	})
}

func TestService_OperatorTransitions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		op   func(svc service.Service, orderID int64) error
		from domain.OrderStatus
		to   domain.OrderStatus
	}{
		{
			name: "接单",
			op: func(svc service.Service, orderID int64) error {
				return svc.ConfirmOrder(context.Background(), orderID)
			},
			from: domain.StatusToBeConfirmed,
			to:   domain.StatusConfirmed,
		},
		{
			name: "开始派送",
			op: func(svc service.Service, orderID int64) error {
				return svc.StartDelivery(context.Background(), orderID)
			},
			from: domain.StatusConfirmed,
			to:   domain.StatusDeliveryInProgress,
		},
		{
			name: "送达完成",
			op: func(svc service.Service, orderID int64) error {
				return svc.CompleteOrder(context.Background(), orderID)
			},
			from: domain.StatusDeliveryInProgress,
			to:   domain.StatusCompleted,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name+"_成功", func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc, m := newTestService(ctrl)

			m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100), tc.from, tc.to, gomock.Any()).
				Return(nil)
			require.NoError(t, tc.op(svc, 100))
		})
		t.Run(tc.name+"_状态不匹配", func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc, m := newTestService(ctrl)

			m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100), tc.from, tc.to, gomock.Any()).
				Return(dao.ErrStateConflict)
			assert.ErrorIs(t, tc.op(svc, 100), service.ErrInvalidStateTransition)
		})
	}
}

func TestService_CancelOrder(t *testing.T) {
	t.Parallel()

	t.Run("用户取消待支付订单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(domain.Order{
			ID:     100,
			UID:    testUID,
			Status: domain.StatusPendingPayment,
		}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100),
			domain.StatusPendingPayment, domain.StatusCancelled, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id int64, from, to domain.OrderStatus, extra map[string]any) error {
				assert.Equal(t, "用户取消", extra["cancel_reason"])
				assert.NotZero(t, extra["cancelled_at"])
				return nil
			})

		require.NoError(t, svc.CancelOrder(context.Background(), testUID, 100))
	})

	t.Run("取消他人订单按不存在处理", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(domain.Order{
			ID:     100,
			UID:    testUID + 1,
			Status: domain.StatusPendingPayment,
		}, nil)

		assert.ErrorIs(t, svc.CancelOrder(context.Background(), testUID, 100), service.ErrUnknownOrder)
	})

	t.Run("已接单订单不可取消", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(domain.Order{
			ID:     100,
			UID:    testUID,
			Status: domain.StatusConfirmed,
		}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100),
			domain.StatusPendingPayment, domain.StatusCancelled, gomock.Any()).
			Return(dao.ErrStateConflict)

		assert.ErrorIs(t, svc.CancelOrder(context.Background(), testUID, 100), service.ErrInvalidStateTransition)
	})
}

func TestService_RemindOrder(t *testing.T) {
	t.Parallel()

	t.Run("催单广播给商家端", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(domain.Order{
			ID:     100,
			SN:     "sn-100",
			UID:    testUID,
			Status: domain.StatusToBeConfirmed,
		}, nil)
		m.bus.EXPECT().Broadcast(gomock.Any(), notification.Event{
			Type:    notification.EventTypeOrderReminder,
			OrderID: 100,
			Content: "订单号: sn-100",
		}).Return(nil)

		require.NoError(t, svc.RemindOrder(context.Background(), testUID, 100))
	})

	t.Run("催单他人订单按不存在处理", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(domain.Order{
			ID:  100,
			UID: testUID + 1,
		}, nil)

		assert.ErrorIs(t, svc.RemindOrder(context.Background(), testUID, 100), service.ErrUnknownOrder)
	})
}
