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

type PaymentStatus uint8

const (
	PaymentStatusUnpaid PaymentStatus = iota + 1
	PaymentStatusProcessing
	PaymentStatusPaidSuccess
	PaymentStatusPaidFailed
)

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

type Payment struct {
	ID               int64
	SN               string
	UID              int64
	OrderID          int64
	OrderSN          string
	OrderDescription string
	TotalAmount      int64
	// TxnID 微信侧的事务ID, 支付成功之前为空
	TxnID         string
	WechatCodeURL string
	PaidAt        int64
	Status        PaymentStatus
	Ctime         int64
	Utime         int64
}
