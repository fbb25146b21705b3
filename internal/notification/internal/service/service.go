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

package service

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/takeaway/internal/notification/internal/domain"
)

//go:generate mockgen -source=./service.go -package=notificationmocks -destination=../../mocks/notification.mock.go -typed Bus
type Bus interface {
	// Broadcast 尽力而为地推送给所有在线商家端,
	// 没有任何连接在线时静默成功, 不会阻塞调用方
	Broadcast(ctx context.Context, evt domain.Event) error
}

type bus struct {
	hub *Hub
}

func NewBus(hub *Hub) Bus {
	go hub.Run()
	return &bus{hub: hub}
}

func (b *bus) Broadcast(ctx context.Context, evt domain.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	select {
	case b.hub.broadcast <- data:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
