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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

type CatalogDAO interface {
	FindDishByID(ctx context.Context, id int64) (Dish, error)
	FindSetmealByID(ctx context.Context, id int64) (Setmeal, error)
}

type catalogGORMDAO struct {
	db *egorm.Component
}

func NewCatalogGORMDAO(db *egorm.Component) CatalogDAO {
	return &catalogGORMDAO{db: db}
}

func (g *catalogGORMDAO) FindDishByID(ctx context.Context, id int64) (Dish, error) {
	var d Dish
	err := g.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return d, err
}

func (g *catalogGORMDAO) FindSetmealByID(ctx context.Context, id int64) (Setmeal, error) {
	var s Setmeal
	err := g.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return s, err
}

type Dish struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:菜品自增ID"`
	Name   string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_dish_name;comment:菜品名称"`
	Image  string `gorm:"type:varchar(512);comment:菜品图片"`
	Price  int64  `gorm:"not null;comment:菜品单价;单位为分, 999表示9.99元"`
	Status int64  `gorm:"type:tinyint;not null;default:1;comment:售卖状态 0=停售 1=起售"`
	Ctime  int64
	Utime  int64
}

type Setmeal struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:套餐自增ID"`
	Name   string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_setmeal_name;comment:套餐名称"`
	Image  string `gorm:"type:varchar(512);comment:套餐图片"`
	Price  int64  `gorm:"not null;comment:套餐价格;单位为分, 999表示9.99元"`
	Status int64  `gorm:"type:tinyint;not null;default:1;comment:售卖状态 0=停售 1=起售"`
	Ctime  int64
	Utime  int64
}
