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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/takeaway/internal/notification/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	hub    *service.Hub
	logger *elog.Component
}

func NewHandler(hub *service.Hub) *Handler {
	return &Handler{
		hub:    hub,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 商家端带着自己生成的会话标识来建立长连接
	server.GET("/ws/:sid", h.Serve)
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Serve(ctx *gin.Context) {
	sid := ctx.Param("sid")
	if err := h.hub.Upgrade(ctx.Writer, ctx.Request, sid); err != nil {
		h.logger.Error("websocket 升级失败",
			elog.String("sid", sid),
			elog.FieldErr(err))
	}
}
