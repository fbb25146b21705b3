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
	"errors"
	"fmt"

	"github.com/ecodeclub/takeaway/internal/cart/internal/domain"
	"github.com/ecodeclub/takeaway/internal/cart/internal/repository"
	"github.com/ecodeclub/takeaway/internal/catalog"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrInvalidCartLine = errors.New("购物车行不合法")
	ErrItemOffSale     = errors.New("菜品或套餐已停售")
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go -typed Service
type Service interface {
	// AddLine 加购: 已存在相同菜品+口味的行时数量+1, 否则从菜单补全名称/图片/单价后新增一行
	AddLine(ctx context.Context, uid int64, line domain.CartLine) error
	List(ctx context.Context, uid int64) ([]domain.CartLine, error)
	// UpsertQuantity 直接覆盖某一行的数量, 数量归零时删除该行
	UpsertQuantity(ctx context.Context, uid, lineID, quantity int64) error
	Clear(ctx context.Context, uid int64) error
	// ClearTx 在下单事务内清空购物车
	ClearTx(tx *egorm.Component, uid int64) error
}

func NewService(repo repository.CartRepository, catalogSvc catalog.Service) Service {
	return &service{repo: repo, catalogSvc: catalogSvc}
}

type service struct {
	repo       repository.CartRepository
	catalogSvc catalog.Service
}

func (s *service) AddLine(ctx context.Context, uid int64, line domain.CartLine) error {
	// 菜品和套餐必须二选一
	if (line.DishID > 0) == (line.SetmealID > 0) {
		return fmt.Errorf("%w: dish id = %d, setmeal id = %d", ErrInvalidCartLine, line.DishID, line.SetmealID)
	}

	existing, err := s.repo.FindLine(ctx, uid, line.DishID, line.SetmealID, line.Flavor)
	switch {
	case err == nil:
		return s.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity+1)
	case errors.Is(err, gorm.ErrRecordNotFound):
		enriched, er := s.enrich(ctx, uid, line)
		if er != nil {
			return er
		}
		_, er = s.repo.AddLine(ctx, enriched)
		return er
	default:
		return fmt.Errorf("查找购物车行失败: %w", err)
	}
}

// enrich 从菜单冗余名称/图片/单价, 之后购物车行不再依赖菜单数据
func (s *service) enrich(ctx context.Context, uid int64, line domain.CartLine) (domain.CartLine, error) {
	line.UID = uid
	line.Quantity = 1
	if line.IsDish() {
		d, err := s.catalogSvc.ResolveDish(ctx, line.DishID)
		if err != nil {
			return domain.CartLine{}, fmt.Errorf("解析菜品失败: %w", err)
		}
		if d.Status != catalog.StatusOnSale {
			return domain.CartLine{}, fmt.Errorf("%w: dish id = %d", ErrItemOffSale, d.ID)
		}
		line.Name, line.Image, line.Price = d.Name, d.Image, d.Price
		return line, nil
	}
	sm, err := s.catalogSvc.ResolveSetmeal(ctx, line.SetmealID)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("解析套餐失败: %w", err)
	}
	if sm.Status != catalog.StatusOnSale {
		return domain.CartLine{}, fmt.Errorf("%w: setmeal id = %d", ErrItemOffSale, sm.ID)
	}
	line.Name, line.Image, line.Price = sm.Name, sm.Image, sm.Price
	return line, nil
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.CartLine, error) {
	return s.repo.ListLines(ctx, uid)
}

func (s *service) UpsertQuantity(ctx context.Context, uid, lineID, quantity int64) error {
	line, err := s.repo.FindLineByID(ctx, lineID)
	if err != nil {
		return fmt.Errorf("查找购物车行失败: %w", err)
	}
	if line.UID != uid {
		return fmt.Errorf("%w: 购物车行不属于当前用户", ErrInvalidCartLine)
	}
	if quantity <= 0 {
		return s.repo.RemoveLine(ctx, lineID)
	}
	return s.repo.UpdateQuantity(ctx, lineID, quantity)
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.repo.Clear(ctx, uid)
}

func (s *service) ClearTx(tx *egorm.Component, uid int64) error {
	return s.repo.ClearTx(tx, uid)
}
