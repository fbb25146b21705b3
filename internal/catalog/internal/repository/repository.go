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

	"github.com/ecodeclub/takeaway/internal/catalog/internal/domain"
	"github.com/ecodeclub/takeaway/internal/catalog/internal/repository/dao"
)

type CatalogRepository interface {
	FindDishByID(ctx context.Context, id int64) (domain.Dish, error)
	FindSetmealByID(ctx context.Context, id int64) (domain.Setmeal, error)
}

func NewRepository(d dao.CatalogDAO) CatalogRepository {
	return &catalogRepository{d: d}
}

type catalogRepository struct {
	d dao.CatalogDAO
}

func (c *catalogRepository) FindDishByID(ctx context.Context, id int64) (domain.Dish, error) {
	d, err := c.d.FindDishByID(ctx, id)
	if err != nil {
		return domain.Dish{}, err
	}
	return domain.Dish{
		ID:     d.Id,
		Name:   d.Name,
		Image:  d.Image,
		Price:  d.Price,
		Status: d.Status,
	}, nil
}

func (c *catalogRepository) FindSetmealByID(ctx context.Context, id int64) (domain.Setmeal, error) {
	s, err := c.d.FindSetmealByID(ctx, id)
	if err != nil {
		return domain.Setmeal{}, err
	}
	return domain.Setmeal{
		ID:     s.Id,
		Name:   s.Name,
		Image:  s.Image,
		Price:  s.Price,
		Status: s.Status,
	}, nil
}
