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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeaway/internal/cart/internal/domain"
	"github.com/ecodeclub/takeaway/internal/cart/internal/repository/dao"
	"github.com/ego-component/egorm"
)

type CartRepository interface {
	ListLines(ctx context.Context, uid int64) ([]domain.CartLine, error)
	FindLine(ctx context.Context, uid, dishID, setmealID int64, flavor string) (domain.CartLine, error)
	FindLineByID(ctx context.Context, id int64) (domain.CartLine, error)
	AddLine(ctx context.Context, line domain.CartLine) (int64, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	RemoveLine(ctx context.Context, id int64) error
	Clear(ctx context.Context, uid int64) error
	ClearTx(tx *egorm.Component, uid int64) error
}

func NewRepository(d dao.ShoppingCartDAO) CartRepository {
	return &cartRepository{d: d}
}

type cartRepository struct {
	d dao.ShoppingCartDAO
}

func (c *cartRepository) ListLines(ctx context.Context, uid int64) ([]domain.CartLine, error) {
	lines, err := c.d.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(lines, func(idx int, src dao.ShoppingCart) domain.CartLine {
		return c.toDomain(src)
	}), nil
}

func (c *cartRepository) FindLine(ctx context.Context, uid, dishID, setmealID int64, flavor string) (domain.CartLine, error) {
	line, err := c.d.FindLine(ctx, uid, dishID, setmealID, flavor)
	if err != nil {
		return domain.CartLine{}, err
	}
	return c.toDomain(line), nil
}

func (c *cartRepository) FindLineByID(ctx context.Context, id int64) (domain.CartLine, error) {
	line, err := c.d.FindByID(ctx, id)
	if err != nil {
		return domain.CartLine{}, err
	}
	return c.toDomain(line), nil
}

func (c *cartRepository) AddLine(ctx context.Context, line domain.CartLine) (int64, error) {
	return c.d.Insert(ctx, c.toEntity(line))
}

func (c *cartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	return c.d.UpdateQuantity(ctx, id, quantity)
}

func (c *cartRepository) RemoveLine(ctx context.Context, id int64) error {
	return c.d.DeleteLine(ctx, id)
}

func (c *cartRepository) Clear(ctx context.Context, uid int64) error {
	return c.d.DeleteByUID(ctx, uid)
}

func (c *cartRepository) ClearTx(tx *egorm.Component, uid int64) error {
	return c.d.DeleteByUIDTx(tx, uid)
}

func (c *cartRepository) toDomain(line dao.ShoppingCart) domain.CartLine {
	return domain.CartLine{
		ID:        line.Id,
		UID:       line.Uid,
		DishID:    line.DishId,
		SetmealID: line.SetmealId,
		Flavor:    line.Flavor,
		Name:      line.Name,
		Image:     line.Image,
		Price:     line.Price,
		Quantity:  line.Quantity,
		Ctime:     line.Ctime,
		Utime:     line.Utime,
	}
}

func (c *cartRepository) toEntity(line domain.CartLine) dao.ShoppingCart {
	return dao.ShoppingCart{
		Id:        line.ID,
		Uid:       line.UID,
		DishId:    line.DishID,
		SetmealId: line.SetmealID,
		Flavor:    line.Flavor,
		Name:      line.Name,
		Image:     line.Image,
		Price:     line.Price,
		Quantity:  line.Quantity,
	}
}
