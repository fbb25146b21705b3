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
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/takeaway/internal/notification/internal/domain"
	"github.com/ecodeclub/takeaway/internal/notification/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, service.Bus) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := service.NewHub()
	bus := service.NewBus(hub)
	engine := gin.New()
	NewHandler(hub).PublicRoutes(engine)
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	return server, bus
}

func dial(t *testing.T, server *httptest.Server, sid string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/" + sid
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

func TestBus_Broadcast(t *testing.T) {
	server, bus := newTestServer(t)
	c1 := dial(t, server, "sid-1")
	c2 := dial(t, server, "sid-2")
	// 等注册事件被事件循环消费
	time.Sleep(50 * time.Millisecond)

	evt := domain.Event{
		Type:    domain.EventTypeOrderPlaced,
		OrderID: 123,
		Content: "订单号: 20240101ABcd",
	}
	err := bus.Broadcast(context.Background(), evt)
	require.NoError(t, err)

	for _, conn := range []*websocket.Conn{c1, c2} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var got domain.Event
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, evt, got)
	}
}

func TestBus_Broadcast_NoClients(t *testing.T) {
	_, bus := newTestServer(t)
	// 没有任何在线连接时广播应当静默成功
	err := bus.Broadcast(context.Background(), domain.Event{
		Type:    domain.EventTypeOrderReminder,
		OrderID: 456,
		Content: "订单号: 20240101EFgh",
	})
	require.NoError(t, err)
}

func TestBus_Broadcast_AfterDisconnect(t *testing.T) {
	server, bus := newTestServer(t)
	conn := dial(t, server, "sid-1")
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, conn.Close())
	time.Sleep(50 * time.Millisecond)

	err := bus.Broadcast(context.Background(), domain.Event{
		Type:    domain.EventTypeOrderPlaced,
		OrderID: 789,
		Content: "订单号: 20240101IJkl",
	})
	require.NoError(t, err)
}
