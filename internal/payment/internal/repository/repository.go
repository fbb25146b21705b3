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

	"github.com/ecodeclub/takeaway/internal/payment/internal/domain"
	"github.com/ecodeclub/takeaway/internal/payment/internal/repository/dao"
)

type PaymentRepository interface {
	FindOrCreate(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	UpdateTxnIDAndStatus(ctx context.Context, orderSN string, txnID string, paidAt int64, status domain.PaymentStatus) error
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func NewRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

func (p *paymentRepository) FindOrCreate(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	res, err := p.dao.FindOrCreate(ctx, p.toEntity(pmt))
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(res), nil
}

func (p *paymentRepository) FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	res, err := p.dao.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(res), nil
}

func (p *paymentRepository) UpdateTxnIDAndStatus(ctx context.Context, orderSN string, txnID string, paidAt int64, status domain.PaymentStatus) error {
	return p.dao.UpdateTxnIDAndStatus(ctx, orderSN, txnID, paidAt, status.ToUint8())
}

func (p *paymentRepository) toEntity(d domain.Payment) dao.Payment {
	return dao.Payment{
		Id:               d.ID,
		SN:               d.SN,
		PayerId:          d.UID,
		OrderId:          d.OrderID,
		OrderSn:          d.OrderSN,
		OrderDescription: d.OrderDescription,
		TotalAmount:      d.TotalAmount,
		TxnID:            d.TxnID,
		PaidAt:           d.PaidAt,
		Status:           d.Status.ToUint8(),
	}
}

func (p *paymentRepository) toDomain(e dao.Payment) domain.Payment {
	return domain.Payment{
		ID:               e.Id,
		SN:               e.SN,
		UID:              e.PayerId,
		OrderID:          e.OrderId,
		OrderSN:          e.OrderSn,
		OrderDescription: e.OrderDescription,
		TotalAmount:      e.TotalAmount,
		TxnID:            e.TxnID,
		PaidAt:           e.PaidAt,
		Status:           domain.PaymentStatus(e.Status),
		Ctime:            e.Ctime,
		Utime:            e.Utime,
	}
}
