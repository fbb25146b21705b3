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
	"time"

	"github.com/ego-component/egorm"
)

type PaymentDAO interface {
	// FindOrCreate 同一个订单重复发起支付时复用已有的支付记录
	FindOrCreate(ctx context.Context, pmt Payment) (Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (Payment, error)
	UpdateTxnIDAndStatus(ctx context.Context, orderSN string, txnID string, paidAt int64, status uint8) error
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (g *PaymentGORMDAO) FindOrCreate(ctx context.Context, pmt Payment) (Payment, error) {
	now := time.Now().UnixMilli()
	pmt.Ctime, pmt.Utime = now, now
	err := g.db.WithContext(ctx).
		FirstOrCreate(&pmt, "order_sn = ?", pmt.OrderSn).Error
	return pmt, err
}

func (g *PaymentGORMDAO) FindByOrderSN(ctx context.Context, orderSN string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("order_sn = ?", orderSN).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) UpdateTxnIDAndStatus(ctx context.Context, orderSN string, txnID string, paidAt int64, status uint8) error {
	return g.db.WithContext(ctx).Model(&Payment{}).
		Where("order_sn = ?", orderSN).
		Updates(map[string]any{
			"txn_id":  txnID,
			"paid_at": paidAt,
			"status":  status,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

type Payment struct {
	Id               int64  `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	SN               string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:支付序列号"`
	PayerId          int64  `gorm:"index:idx_payer_id;comment:支付者ID"`
	OrderId          int64  `gorm:"uniqueIndex:uniq_order_id;comment:订单自增ID"`
	OrderSn          string `gorm:"type:varchar(255);uniqueIndex:uniq_order_sn;comment:订单序列号"`
	OrderDescription string `gorm:"type:varchar(255);not null;comment:订单简要描述"`
	TotalAmount      int64  `gorm:"not null;comment:支付总金额, 单位为分"`
	TxnID            string `gorm:"column:txn_id;type:varchar(255);comment:微信事务ID"`
	PaidAt           int64  `gorm:"comment:支付时间"`
	Status           uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=未支付 2=支付中 3=支付成功 4=支付失败"`
	Ctime            int64
	Utime            int64
}
