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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/takeaway/internal/cart/internal/domain"
	"github.com/ecodeclub/takeaway/internal/cart/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/shopping-cart")
	g.POST("/add", ginx.BS[AddCartLineReq](h.AddLine))
	g.POST("/list", ginx.S(h.List))
	g.POST("/quantity", ginx.BS[UpsertQuantityReq](h.UpsertQuantity))
	g.POST("/clean", ginx.S(h.Clean))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// AddLine 加购一件菜品或套餐
func (h *Handler) AddLine(ctx *ginx.Context, req AddCartLineReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AddLine(ctx.Request.Context(), sess.Claims().Uid, domain.CartLine{
		DishID:    req.DishID,
		SetmealID: req.SetmealID,
		Flavor:    req.Flavor,
	})
	switch {
	case errors.Is(err, service.ErrInvalidCartLine):
		return invalidCartLineResult, err
	case errors.Is(err, service.ErrItemOffSale):
		return itemOffSaleResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("加购失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// List 查看当前用户的购物车
func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	lines, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询购物车失败: %w", err)
	}
	var total int64
	for _, line := range lines {
		total += line.Amount()
	}
	return ginx.Result{
		Data: ListCartResp{
			TotalAmount: total,
			Lines: slice.Map(lines, func(idx int, src domain.CartLine) CartLine {
				return CartLine{
					ID:        src.ID,
					DishID:    src.DishID,
					SetmealID: src.SetmealID,
					Flavor:    src.Flavor,
					Name:      src.Name,
					Image:     src.Image,
					Price:     src.Price,
					Quantity:  src.Quantity,
				}
			}),
		},
	}, nil
}

// UpsertQuantity 覆盖某一行的数量
func (h *Handler) UpsertQuantity(ctx *ginx.Context, req UpsertQuantityReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpsertQuantity(ctx.Request.Context(), sess.Claims().Uid, req.LineID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidCartLine):
		return invalidCartLineResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("修改购物车行数量失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// Clean 清空购物车
func (h *Handler) Clean(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.svc.Clear(ctx.Request.Context(), sess.Claims().Uid); err != nil {
		return systemErrorResult, fmt.Errorf("清空购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
