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

package domain

type OrderStatus uint8

const (
	StatusPendingPayment     OrderStatus = 1
	StatusToBeConfirmed      OrderStatus = 2
	StatusConfirmed          OrderStatus = 3
	StatusDeliveryInProgress OrderStatus = 4
	StatusCompleted          OrderStatus = 5
	StatusCancelled          OrderStatus = 6
)

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

// CanTransitionTo 订单状态只能沿固定路线单向推进
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPendingPayment:
		return next == StatusToBeConfirmed || next == StatusCancelled
	case StatusToBeConfirmed:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusDeliveryInProgress
	case StatusDeliveryInProgress:
		return next == StatusCompleted
	default:
		// 已完成和已取消都是终态
		return false
	}
}

type PayStatus uint8

const (
	PayStatusUnpaid   PayStatus = 0
	PayStatusPaid     PayStatus = 1
	PayStatusRefunded PayStatus = 2
)

func (s PayStatus) ToUint8() uint8 {
	return uint8(s)
}

type Order struct {
	ID     int64
	SN     string
	UID    int64
	Status OrderStatus
	// PayStatus 和 Status 分开记录, 退款流程只动 PayStatus
	PayStatus PayStatus
	// Amount 订单总金额, 单位为分
	Amount int64
	Remark string
	// 地址快照, 下单时从地址簿复制
	Consignee string
	Phone     string
	Address   string

	CancelReason string
	PaidAt       int64
	CancelledAt  int64
	CompletedAt  int64
	Items        []OrderItem
	Ctime        int64
	Utime        int64
}

type OrderItem struct {
	OrderID   int64
	DishID    int64
	SetmealID int64
	Name      string
	Image     string
	Flavor    string
	// Price 下单时的单价快照, 单位为分
	Price    int64
	Quantity int64
}

func (i OrderItem) Amount() int64 {
	return i.Price * i.Quantity
}
