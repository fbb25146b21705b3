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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrDuplicatedOrderSN 订单号撞上了唯一索引, 正常情况下不该发生
	ErrDuplicatedOrderSN = errors.New("订单序列号重复")
	// ErrStateConflict 条件更新没有命中任何行, 说明订单已经不在期望的状态上
	ErrStateConflict = errors.New("订单状态冲突")
)

type OrderDAO interface {
	// CreateOrder 在同一个事务里插入订单主记录和明细,
	// clearCart 由购物车模块注入, 任何一步失败整体回滚
	CreateOrder(ctx context.Context, o Order, details []OrderDetail, clearCart func(tx *egorm.Component) error) (int64, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndUID(ctx context.Context, sn string, uid int64) (Order, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindDetailsByOrderID(ctx context.Context, orderID int64) ([]OrderDetail, error)
	// UpdateStatus 条件状态迁移, 只有订单仍处于 from 状态时才会更新,
	// 没有命中任何行返回 ErrStateConflict
	UpdateStatus(ctx context.Context, id int64, from, to uint8, extra map[string]any) error

	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	ListByStatus(ctx context.Context, status uint8, offset, limit int) ([]Order, error)
	CountByStatus(ctx context.Context, status uint8) (int64, error)
	// ListTimeout 找出在 until 之前创建且仍停在 status 状态的订单
	ListTimeout(ctx context.Context, status uint8, until int64, offset, limit int) ([]Order, error)
	CountTimeout(ctx context.Context, status uint8, until int64) (int64, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (g *OrderGORMDAO) CreateOrder(ctx context.Context, o Order, details []OrderDetail, clearCart func(tx *egorm.Component) error) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicatedOrderSN
				}
			}
			return err
		}
		for i := range details {
			details[i].OrderId = o.Id
			details[i].Ctime, details[i].Utime = now, now
		}
		if err := tx.Create(&details).Error; err != nil {
			return err
		}
		return clearCart(tx)
	})
	if err != nil {
		return 0, err
	}
	return o.Id, nil
}

func (g *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindBySNAndUID(ctx context.Context, sn string, uid int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("sn = ? AND uid = ?", sn, uid).First(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindDetailsByOrderID(ctx context.Context, orderID int64) ([]OrderDetail, error) {
	var res []OrderDetail
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, from, to uint8, extra map[string]any) error {
	updates := map[string]any{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	for k, v := range extra {
		updates[k] = v
	}
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateConflict
	}
	return nil
}

func (g *OrderGORMDAO) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("uid = ?", uid).Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) ListByStatus(ctx context.Context, status uint8, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("status = ?", status).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountByStatus(ctx context.Context, status uint8) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("status = ?", status).Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) ListTimeout(ctx context.Context, status uint8, until int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("status = ? AND ctime < ?", status, until).
		Order("id ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountTimeout(ctx context.Context, status uint8, until int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND ctime < ?", status, until).Count(&res).Error
	return res, err
}

type Order struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN           string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	Uid          int64  `gorm:"not null;index:idx_uid;comment:下单用户ID"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_ctime;comment:订单状态 1=待支付 2=待接单 3=已接单 4=派送中 5=已完成 6=已取消"`
	PayStatus    uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:支付状态 0=未支付 1=已支付 2=已退款"`
	Amount       int64  `gorm:"not null;comment:订单总金额, 单位为分"`
	Remark       string `gorm:"type:varchar(255);comment:订单备注"`
	Consignee    string `gorm:"type:varchar(64);not null;comment:收货人快照"`
	Phone        string `gorm:"type:varchar(16);not null;comment:收货人手机号快照"`
	Address      string `gorm:"type:varchar(256);not null;comment:收货地址快照"`
	CancelReason string `gorm:"type:varchar(255);comment:取消原因"`
	PaidAt       int64  `gorm:"comment:支付时间"`
	CancelledAt  int64  `gorm:"comment:取消时间"`
	CompletedAt  int64  `gorm:"comment:完成时间"`
	Ctime        int64  `gorm:"index:idx_status_ctime,priority:2"`
	Utime        int64
}

type OrderDetail struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单明细自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	DishId    int64  `gorm:"comment:菜品ID, 与套餐ID二选一"`
	SetmealId int64  `gorm:"comment:套餐ID, 与菜品ID二选一"`
	Name      string `gorm:"type:varchar(64);not null;comment:名称快照"`
	Image     string `gorm:"type:varchar(256);comment:图片快照"`
	Flavor    string `gorm:"type:varchar(128);comment:口味"`
	Price     int64  `gorm:"not null;comment:下单时单价, 单位为分"`
	Quantity  int64  `gorm:"not null;comment:数量"`
	Ctime     int64
	Utime     int64
}

func (Order) TableName() string {
	return "orders"
}

func (OrderDetail) TableName() string {
	return "order_details"
}
