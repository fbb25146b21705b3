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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeaway/internal/order/internal/domain"
	"github.com/ecodeclub/takeaway/internal/order/internal/repository/dao"
	"github.com/ego-component/egorm"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/order_repository.mock.go -typed OrderRepository
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order, clearCart func(tx *egorm.Component) error) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	// FindBySNAndUID 带明细
	FindBySNAndUID(ctx context.Context, sn string, uid int64) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	// UpdateStatus 条件状态迁移, 订单不在 from 状态时返回 dao.ErrStateConflict
	UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus, extra map[string]any) error
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error)
	TotalByUID(ctx context.Context, uid int64) (int64, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error)
	TotalByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
	ListTimeout(ctx context.Context, status domain.OrderStatus, until int64, offset, limit int) ([]domain.Order, error)
	TotalTimeout(ctx context.Context, status domain.OrderStatus, until int64) (int64, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order, clearCart func(tx *egorm.Component) error) (domain.Order, error) {
	oid, err := o.d.CreateOrder(ctx, o.toEntity(order), o.toDetailEntities(order.Items), clearCart)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	res, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(res), nil
}

func (o *orderRepository) FindBySNAndUID(ctx context.Context, sn string, uid int64) (domain.Order, error) {
	res, err := o.d.FindBySNAndUID(ctx, sn, uid)
	if err != nil {
		return domain.Order{}, err
	}
	details, err := o.d.FindDetailsByOrderID(ctx, res.Id)
	if err != nil {
		return domain.Order{}, err
	}
	order := o.toDomain(res)
	order.Items = slice.Map(details, func(idx int, src dao.OrderDetail) domain.OrderItem {
		return domain.OrderItem{
			OrderID:   src.OrderId,
			DishID:    src.DishId,
			SetmealID: src.SetmealId,
			Name:      src.Name,
			Image:     src.Image,
			Flavor:    src.Flavor,
			Price:     src.Price,
			Quantity:  src.Quantity,
		}
	})
	return order, nil
}

func (o *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	res, err := o.d.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(res), nil
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus, extra map[string]any) error {
	return o.d.UpdateStatus(ctx, id, from.ToUint8(), to.ToUint8(), extra)
}

func (o *orderRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	res, err := o.d.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomains(res), nil
}

func (o *orderRepository) TotalByUID(ctx context.Context, uid int64) (int64, error) {
	return o.d.CountByUID(ctx, uid)
}

func (o *orderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error) {
	res, err := o.d.ListByStatus(ctx, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomains(res), nil
}

func (o *orderRepository) TotalByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	return o.d.CountByStatus(ctx, status.ToUint8())
}

func (o *orderRepository) ListTimeout(ctx context.Context, status domain.OrderStatus, until int64, offset, limit int) ([]domain.Order, error) {
	res, err := o.d.ListTimeout(ctx, status.ToUint8(), until, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomains(res), nil
}

func (o *orderRepository) TotalTimeout(ctx context.Context, status domain.OrderStatus, until int64) (int64, error) {
	return o.d.CountTimeout(ctx, status.ToUint8(), until)
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:           order.ID,
		SN:           order.SN,
		Uid:          order.UID,
		Status:       order.Status.ToUint8(),
		PayStatus:    order.PayStatus.ToUint8(),
		Amount:       order.Amount,
		Remark:       order.Remark,
		Consignee:    order.Consignee,
		Phone:        order.Phone,
		Address:      order.Address,
		CancelReason: order.CancelReason,
		PaidAt:       order.PaidAt,
		CancelledAt:  order.CancelledAt,
		CompletedAt:  order.CompletedAt,
	}
}

func (o *orderRepository) toDetailEntities(items []domain.OrderItem) []dao.OrderDetail {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderDetail {
		return dao.OrderDetail{
			DishId:    src.DishID,
			SetmealId: src.SetmealID,
			Name:      src.Name,
			Image:     src.Image,
			Flavor:    src.Flavor,
			Price:     src.Price,
			Quantity:  src.Quantity,
		}
	})
}

func (o *orderRepository) toDomain(e dao.Order) domain.Order {
	return domain.Order{
		ID:           e.Id,
		SN:           e.SN,
		UID:          e.Uid,
		Status:       domain.OrderStatus(e.Status),
		PayStatus:    domain.PayStatus(e.PayStatus),
		Amount:       e.Amount,
		Remark:       e.Remark,
		Consignee:    e.Consignee,
		Phone:        e.Phone,
		Address:      e.Address,
		CancelReason: e.CancelReason,
		PaidAt:       e.PaidAt,
		CancelledAt:  e.CancelledAt,
		CompletedAt:  e.CompletedAt,
		Ctime:        e.Ctime,
		Utime:        e.Utime,
	}
}

func (o *orderRepository) toDomains(es []dao.Order) []domain.Order {
	return slice.Map(es, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	})
}
