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

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/takeaway/internal/order/internal/domain"
	"github.com/ecodeclub/takeaway/internal/order/internal/service"
	"github.com/ecodeclub/takeaway/internal/payment"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc        service.Service
	paymentSvc payment.Service
	cache      ecache.Cache
}

func NewHandler(svc service.Service, paymentSvc payment.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, paymentSvc: paymentSvc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/submit", ginx.BS[SubmitOrderReq](h.SubmitOrder))
	g.POST("/payment", ginx.BS[PayOrderReq](h.PayOrder))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
	g.POST("/reminder", ginx.BS[RemindOrderReq](h.RemindOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// SubmitOrder 用户下单, 把购物车转成订单
func (h *Handler) SubmitOrder(ctx *ginx.Context, req SubmitOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, fmt.Errorf("请求ID错误: %w", err)
	}
	order, err := h.svc.SubmitOrder(ctx.Request.Context(), sess.Claims().Uid, req.AddressID, req.Remark)
	switch {
	case errors.Is(err, service.ErrAddressNotFound):
		return addressNotFoundResult, err
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}
	return ginx.Result{
		Data: SubmitOrderResp{
			OrderID:   order.ID,
			OrderSN:   order.SN,
			OrderedAt: order.Ctime,
			Amount:    order.Amount,
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := fmt.Sprintf("order:submit:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

// PayOrder 对待支付订单发起微信预支付, 返回扫码用的 code url
func (h *Handler) PayOrder(ctx *ginx.Context, req PayOrderReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	order, err := h.svc.FindOrderByUIDAndSN(ctx.Request.Context(), uid, req.OrderSN)
	if err != nil {
		return orderNotFoundResult, fmt.Errorf("订单未找到: %w", err)
	}
	pmt, err := h.paymentSvc.Prepay(ctx.Request.Context(), payment.Payment{
		UID:              uid,
		OrderID:          order.ID,
		OrderSN:          order.SN,
		OrderDescription: "外卖订单",
		TotalAmount:      order.Amount,
	})
	switch {
	case errors.Is(err, payment.ErrAlreadyPaid):
		return alreadyPaidResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("发起支付失败: %w", err)
	}
	return ginx.Result{
		Data: PayOrderResp{
			WechatCodeURL: pmt.WechatCodeURL,
		},
	}, nil
}

// ListOrders 分页查询用户订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
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

// RetrieveOrderDetail 查看订单详情, 含明细
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderByUIDAndSN(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if err != nil {
		return orderNotFoundResult, fmt.Errorf("订单未找到: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{
			Order: toOrderVO(order),
		},
	}, nil
}

// CancelOrder 用户取消订单, 只有待支付订单可以取消
func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	switch {
	case errors.Is(err, service.ErrUnknownOrder):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrInvalidStateTransition):
		return invalidStateTransitionResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("取消订单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// RemindOrder 用户催单
func (h *Handler) RemindOrder(ctx *ginx.Context, req RemindOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemindOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	switch {
	case errors.Is(err, service.ErrUnknownOrder):
		return orderNotFoundResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("催单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toOrderVO(order domain.Order) Order {
	return Order{
		ID:           order.ID,
		SN:           order.SN,
		Status:       order.Status.ToUint8(),
		PayStatus:    order.PayStatus.ToUint8(),
		Amount:       order.Amount,
		Remark:       order.Remark,
		Consignee:    order.Consignee,
		Phone:        order.Phone,
		Address:      order.Address,
		CancelReason: order.CancelReason,
		PaidAt:       order.PaidAt,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				DishID:    src.DishID,
				SetmealID: src.SetmealID,
				Name:      src.Name,
				Image:     src.Image,
				Flavor:    src.Flavor,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
