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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeaway/internal/address"
	"github.com/ecodeclub/takeaway/internal/cart"
	"github.com/ecodeclub/takeaway/internal/notification"
	"github.com/ecodeclub/takeaway/internal/order/internal/domain"
	"github.com/ecodeclub/takeaway/internal/order/internal/event"
	"github.com/ecodeclub/takeaway/internal/order/internal/repository"
	"github.com/ecodeclub/takeaway/internal/order/internal/repository/dao"
	"github.com/ecodeclub/takeaway/internal/pkg/sequencenumber"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart = errors.New("购物车为空")
	// ErrAddressNotFound 直接复用地址模块的哨兵错误, 方便调用方统一判断
	ErrAddressNotFound        = address.ErrAddressNotFound
	ErrUnknownOrder           = errors.New("订单不存在")
	ErrInvalidStateTransition = errors.New("订单状态不允许该操作")
)

const (
	cancelReasonTimeout = "订单超时, 自动取消"
	cancelReasonUser    = "用户取消"
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// SubmitOrder 把当前购物车一次性转成订单: 插入订单主记录和明细,
	// 清空购物车, 三者在同一个事务里, 失败整体回滚
	SubmitOrder(ctx context.Context, uid, addressID int64, remark string) (domain.Order, error)
	// MarkOrderPaid 支付成功对账入口, 幂等, 重复调用返回 nil 且不重复通知
	MarkOrderPaid(ctx context.Context, orderSN string) error
	// ConfirmOrder 商家接单
	ConfirmOrder(ctx context.Context, orderID int64) error
	// StartDelivery 开始派送
	StartDelivery(ctx context.Context, orderID int64) error
	// CompleteOrder 送达完成
	CompleteOrder(ctx context.Context, orderID int64) error
	// CancelOrder 用户取消, 只有待支付订单可以取消
	CancelOrder(ctx context.Context, uid, orderID int64) error
	// RemindOrder 用户催单, 透传给商家端
	RemindOrder(ctx context.Context, uid, orderID int64) error

	FindOrderByUIDAndSN(ctx context.Context, uid int64, sn string) (domain.Order, error)
	ListOrders(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error)
	FindTimeoutOrders(ctx context.Context, status domain.OrderStatus, until int64, offset, limit int) ([]domain.Order, int64, error)
	// CancelTimeoutOrder 超时扫描任务专用, 带原因的条件取消
	CancelTimeoutOrder(ctx context.Context, orderID int64) error
	// CompleteDeliveringOrder 派送超时兜底完成
	CompleteDeliveringOrder(ctx context.Context, orderID int64) error
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	addressSvc  address.Service
	bus         notification.Bus
	producer    event.OrderEventProducer
	snGenerator *sequencenumber.Generator
	logger      *elog.Component
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	addressSvc address.Service,
	bus notification.Bus,
	producer event.OrderEventProducer,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		addressSvc:  addressSvc,
		bus:         bus,
		producer:    producer,
		snGenerator: snGenerator,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) SubmitOrder(ctx context.Context, uid, addressID int64, remark string) (domain.Order, error) {
	addr, err := s.addressSvc.FindByIDAndUID(ctx, uid, addressID)
	if err != nil {
		return domain.Order{}, err
	}
	lines, err := s.cartSvc.List(ctx, uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查询购物车失败: %w", err)
	}
	if len(lines) == 0 {
		return domain.Order{}, fmt.Errorf("%w: uid=%d", ErrEmptyCart, uid)
	}
	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}

	var amount int64
	items := slice.Map(lines, func(idx int, src cart.CartLine) domain.OrderItem {
		amount += src.Amount()
		return domain.OrderItem{
			DishID:    src.DishID,
			SetmealID: src.SetmealID,
			Name:      src.Name,
			Image:     src.Image,
			Flavor:    src.Flavor,
			Price:     src.Price,
			Quantity:  src.Quantity,
		}
	})

	order := domain.Order{
		SN:        sn,
		UID:       uid,
		Status:    domain.StatusPendingPayment,
		PayStatus: domain.PayStatusUnpaid,
		Amount:    amount,
		Remark:    remark,
		Consignee: addr.Consignee,
		Phone:     addr.Phone,
		Address:   addr.Detail,
		Items:     items,
	}
	created, err := s.repo.CreateOrder(ctx, order, func(tx *egorm.Component) error {
		return s.cartSvc.ClearTx(tx, uid)
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}
	created.Ctime = time.Now().UnixMilli()
	return created, nil
}

func (s *service) MarkOrderPaid(ctx context.Context, orderSN string) error {
	order, err := s.repo.FindBySN(ctx, orderSN)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: sn=%s", ErrUnknownOrder, orderSN)
	}
	if err != nil {
		return fmt.Errorf("查询订单失败: %w", err)
	}
	if order.PayStatus == domain.PayStatusPaid {
		// 支付网关会重复通知, 这里按幂等处理
		return nil
	}
	err = s.repo.UpdateStatus(ctx, order.ID,
		domain.StatusPendingPayment, domain.StatusToBeConfirmed,
		map[string]any{
			"pay_status": domain.PayStatusPaid.ToUint8(),
			"paid_at":    time.Now().UnixMilli(),
		})
	if errors.Is(err, dao.ErrStateConflict) {
		// 并发的回调或者超时扫描抢先了, 重新确认终态
		latest, ferr := s.repo.FindBySN(ctx, orderSN)
		if ferr == nil && latest.PayStatus == domain.PayStatusPaid {
			return nil
		}
		return fmt.Errorf("%w: id=%d", ErrInvalidStateTransition, order.ID)
	}
	if err != nil {
		return fmt.Errorf("更新订单状态失败: %w", err)
	}
	s.notifyBestEffort(ctx, notification.Event{
		Type:    notification.EventTypeOrderPlaced,
		OrderID: order.ID,
		Content: fmt.Sprintf("订单号: %s", order.SN),
	})
	s.produceBestEffort(ctx, event.OrderEvent{
		OrderSN: order.SN,
		Status:  domain.StatusToBeConfirmed.ToUint8(),
	})
	return nil
}

func (s *service) ConfirmOrder(ctx context.Context, orderID int64) error {
	return s.transit(ctx, orderID, domain.StatusToBeConfirmed, domain.StatusConfirmed, nil)
}

func (s *service) StartDelivery(ctx context.Context, orderID int64) error {
	return s.transit(ctx, orderID, domain.StatusConfirmed, domain.StatusDeliveryInProgress, nil)
}

func (s *service) CompleteOrder(ctx context.Context, orderID int64) error {
	return s.transit(ctx, orderID, domain.StatusDeliveryInProgress, domain.StatusCompleted,
		map[string]any{
			"completed_at": time.Now().UnixMilli(),
		})
}

func (s *service) CancelOrder(ctx context.Context, uid, orderID int64) error {
	order, err := s.findOwnedOrder(ctx, uid, orderID)
	if err != nil {
		return err
	}
	return s.transit(ctx, order.ID, domain.StatusPendingPayment, domain.StatusCancelled,
		map[string]any{
			"cancel_reason": cancelReasonUser,
			"cancelled_at":  time.Now().UnixMilli(),
		})
}

func (s *service) RemindOrder(ctx context.Context, uid, orderID int64) error {
	order, err := s.findOwnedOrder(ctx, uid, orderID)
	if err != nil {
		return err
	}
	s.notifyBestEffort(ctx, notification.Event{
		Type:    notification.EventTypeOrderReminder,
		OrderID: order.ID,
		Content: fmt.Sprintf("订单号: %s", order.SN),
	})
	return nil
}

func (s *service) FindOrderByUIDAndSN(ctx context.Context, uid int64, sn string) (domain.Order, error) {
	order, err := s.repo.FindBySNAndUID(ctx, sn, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: sn=%s", ErrUnknownOrder, sn)
	}
	return order, err
}

func (s *service) ListOrders(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	return s.list(ctx,
		func(ctx context.Context) ([]domain.Order, error) {
			return s.repo.ListByUID(ctx, uid, offset, limit)
		},
		func(ctx context.Context) (int64, error) {
			return s.repo.TotalByUID(ctx, uid)
		})
}

func (s *service) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	return s.list(ctx,
		func(ctx context.Context) ([]domain.Order, error) {
			return s.repo.ListByStatus(ctx, status, offset, limit)
		},
		func(ctx context.Context) (int64, error) {
			return s.repo.TotalByStatus(ctx, status)
		})
}

func (s *service) FindTimeoutOrders(ctx context.Context, status domain.OrderStatus, until int64, offset, limit int) ([]domain.Order, int64, error) {
	return s.list(ctx,
		func(ctx context.Context) ([]domain.Order, error) {
			return s.repo.ListTimeout(ctx, status, until, offset, limit)
		},
		func(ctx context.Context) (int64, error) {
			return s.repo.TotalTimeout(ctx, status, until)
		})
}

func (s *service) CancelTimeoutOrder(ctx context.Context, orderID int64) error {
	return s.transit(ctx, orderID, domain.StatusPendingPayment, domain.StatusCancelled,
		map[string]any{
			"cancel_reason": cancelReasonTimeout,
			"cancelled_at":  time.Now().UnixMilli(),
		})
}

func (s *service) CompleteDeliveringOrder(ctx context.Context, orderID int64) error {
	return s.CompleteOrder(ctx, orderID)
}

func (s *service) transit(ctx context.Context, orderID int64, from, to domain.OrderStatus, extra map[string]any) error {
	err := s.repo.UpdateStatus(ctx, orderID, from, to, extra)
	if errors.Is(err, dao.ErrStateConflict) {
		return fmt.Errorf("%w: id=%d, 期望状态=%d", ErrInvalidStateTransition, orderID, from.ToUint8())
	}
	if err != nil {
		return fmt.Errorf("更新订单状态失败: %w", err)
	}
	return nil
}

func (s *service) findOwnedOrder(ctx context.Context, uid, orderID int64) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: id=%d", ErrUnknownOrder, orderID)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("查询订单失败: %w", err)
	}
	if order.UID != uid {
		// 不泄露他人订单的存在性
		return domain.Order{}, fmt.Errorf("%w: id=%d", ErrUnknownOrder, orderID)
	}
	return order, nil
}

type listFunc func(ctx context.Context) ([]domain.Order, error)
type countFunc func(ctx context.Context) (int64, error)

func (s *service) list(ctx context.Context, lf listFunc, cf countFunc) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = lf(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = cf(ctx)
		return err
	})
	return orders, total, eg.Wait()
}

// 状态变更之后的通知和事件都是尽力而为, 失败只记日志, 不影响主流程
func (s *service) notifyBestEffort(ctx context.Context, evt notification.Event) {
	if err := s.bus.Broadcast(ctx, evt); err != nil {
		s.logger.Error("推送商家端通知失败",
			elog.Int64("order_id", evt.OrderID),
			elog.FieldErr(err))
	}
}

func (s *service) produceBestEffort(ctx context.Context, evt event.OrderEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单状态事件失败",
			elog.String("order_sn", evt.OrderSN),
			elog.FieldErr(err))
	}
}
