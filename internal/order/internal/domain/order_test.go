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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{
			name: "待支付到待接单",
			from: StatusPendingPayment,
			to:   StatusToBeConfirmed,
			want: true,
		},
		{
			name: "待支付到已取消",
			from: StatusPendingPayment,
			to:   StatusCancelled,
			want: true,
		},
		{
			name: "待接单到已接单",
			from: StatusToBeConfirmed,
			to:   StatusConfirmed,
			want: true,
		},
		{
			name: "已接单到派送中",
			from: StatusConfirmed,
			to:   StatusDeliveryInProgress,
			want: true,
		},
		{
			name: "派送中到已完成",
			from: StatusDeliveryInProgress,
			to:   StatusCompleted,
			want: true,
		},
		{
			name: "待支付不能直接已接单",
			from: StatusPendingPayment,
			to:   StatusConfirmed,
			want: false,
		},
		{
			name: "待接单不能回退到待支付",
			from: StatusToBeConfirmed,
			to:   StatusPendingPayment,
			want: false,
		},
		{
			name: "支付后不能取消",
			from: StatusToBeConfirmed,
			to:   StatusCancelled,
			want: false,
		},
		{
			name: "已接单不能跳到已完成",
			from: StatusConfirmed,
			to:   StatusCompleted,
			want: false,
		},
		{
			name: "已完成是终态",
			from: StatusCompleted,
			to:   StatusDeliveryInProgress,
			want: false,
		},
		{
			name: "已取消是终态",
			from: StatusCancelled,
			to:   StatusPendingPayment,
			want: false,
		},
		{
			name: "不能原地踏步",
			from: StatusConfirmed,
			to:   StatusConfirmed,
			want: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderItem_Amount(t *testing.T) {
	t.Parallel()
	item := OrderItem{Price: 1990, Quantity: 3}
	assert.Equal(t, int64(5970), item.Amount())
}
