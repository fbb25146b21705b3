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

package web

type SubmitOrderReq struct {
	// RequestID 客户端生成的幂等键, 防止重复提交
	RequestID string `json:"requestId"`
	AddressID int64  `json:"addressId"`
	Remark    string `json:"remark"`
}

type SubmitOrderResp struct {
	OrderID   int64  `json:"orderId"`
	OrderSN   string `json:"orderSn"`
	OrderedAt int64  `json:"orderedAt"`
	Amount    int64  `json:"amount"`
}

type PayOrderReq struct {
	OrderSN string `json:"orderSn"`
}

type PayOrderResp struct {
	WechatCodeURL string `json:"wechatCodeUrl"`
}

type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type RetrieveOrderDetailReq struct {
	OrderSN string `json:"orderSn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type CancelOrderReq struct {
	OrderID int64 `json:"orderId"`
}

type RemindOrderReq struct {
	OrderID int64 `json:"orderId"`
}

type ConfirmOrderReq struct {
	OrderID int64 `json:"orderId"`
}

type StartDeliveryReq struct {
	OrderID int64 `json:"orderId"`
}

type CompleteOrderReq struct {
	OrderID int64 `json:"orderId"`
}

type SearchOrdersReq struct {
	Status uint8 `json:"status"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type Order struct {
	ID           int64       `json:"id"`
	SN           string      `json:"sn"`
	Status       uint8       `json:"status"`
	PayStatus    uint8       `json:"payStatus"`
	Amount       int64       `json:"amount"`
	Remark       string      `json:"remark,omitempty"`
	Consignee    string      `json:"consignee"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	CancelReason string      `json:"cancelReason,omitempty"`
	PaidAt       int64       `json:"paidAt,omitempty"`
	Items        []OrderItem `json:"items,omitempty"`
	Ctime        int64       `json:"ctime"`
	Utime        int64       `json:"utime"`
}

type OrderItem struct {
	DishID    int64  `json:"dishId,omitempty"`
	SetmealID int64  `json:"setmealId,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Flavor    string `json:"flavor,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}
