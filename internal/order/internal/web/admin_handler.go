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

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/takeaway/internal/order/internal/domain"
	"github.com/ecodeclub/takeaway/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 商家端的订单操作入口, 挂在管理端服务上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/confirm", ginx.B[ConfirmOrderReq](h.ConfirmOrder))
	g.POST("/delivery", ginx.B[StartDeliveryReq](h.StartDelivery))
	g.POST("/complete", ginx.B[CompleteOrderReq](h.CompleteOrder))
	g.POST("/search", ginx.B[SearchOrdersReq](h.SearchOrders))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

// ConfirmOrder 商家接单
func (h *AdminHandler) ConfirmOrder(ctx *ginx.Context, req ConfirmOrderReq) (ginx.Result, error) {
	return h.transit(ctx, req.OrderID, h.svc.ConfirmOrder)
}

// StartDelivery 开始派送
func (h *AdminHandler) StartDelivery(ctx *ginx.Context, req StartDeliveryReq) (ginx.Result, error) {
	return h.transit(ctx, req.OrderID, h.svc.StartDelivery)
}

// CompleteOrder 送达完成
func (h *AdminHandler) CompleteOrder(ctx *ginx.Context, req CompleteOrderReq) (ginx.Result, error) {
	return h.transit(ctx, req.OrderID, h.svc.CompleteOrder)
}

// SearchOrders 按状态分页查询订单
func (h *AdminHandler) SearchOrders(ctx *ginx.Context, req SearchOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrdersByStatus(ctx.Request.Context(),
		domain.OrderStatus(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单失败: %w", err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) transit(ctx *ginx.Context, orderID int64, op func(ctx context.Context, id int64) error) (ginx.Result, error) {
	err := op(ctx.Request.Context(), orderID)
	switch {
	case errors.Is(err, service.ErrInvalidStateTransition):
		return invalidStateTransitionResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("更新订单状态失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
