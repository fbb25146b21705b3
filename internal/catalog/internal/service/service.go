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

	"github.com/ecodeclub/takeaway/internal/catalog/internal/domain"
	"github.com/ecodeclub/takeaway/internal/catalog/internal/repository"
	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("菜品或套餐不存在")

//go:generate mockgen -source=./service.go -package=catalogmocks -destination=../../mocks/catalog.mock.go -typed Service
type Service interface {
	// ResolveDish 解析菜品当前的名称、图片和单价
	ResolveDish(ctx context.Context, id int64) (domain.Dish, error)
	// ResolveSetmeal 解析套餐当前的名称、图片和价格
	ResolveSetmeal(ctx context.Context, id int64) (domain.Setmeal, error)
}

func NewService(repo repository.CatalogRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CatalogRepository
}

func (s *service) ResolveDish(ctx context.Context, id int64) (domain.Dish, error) {
	d, err := s.repo.FindDishByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Dish{}, fmt.Errorf("%w: dish id = %d", ErrItemNotFound, id)
	}
	return d, err
}

func (s *service) ResolveSetmeal(ctx context.Context, id int64) (domain.Setmeal, error) {
	sm, err := s.repo.FindSetmealByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Setmeal{}, fmt.Errorf("%w: setmeal id = %d", ErrItemNotFound, id)
	}
	return sm, err
}
