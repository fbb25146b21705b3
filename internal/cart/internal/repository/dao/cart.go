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
	"time"

	"github.com/ego-component/egorm"
)

type ShoppingCartDAO interface {
	FindByUID(ctx context.Context, uid int64) ([]ShoppingCart, error)
	FindLine(ctx context.Context, uid, dishID, setmealID int64, flavor string) (ShoppingCart, error)
	FindByID(ctx context.Context, id int64) (ShoppingCart, error)
	Insert(ctx context.Context, line ShoppingCart) (int64, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	DeleteLine(ctx context.Context, id int64) error
	DeleteByUID(ctx context.Context, uid int64) error
	// DeleteByUIDTx 在外部事务内清空购物车, 用于下单时保证订单插入与清空购物车的原子性
	DeleteByUIDTx(tx *egorm.Component, uid int64) error
}

type shoppingCartGORMDAO struct {
	db *egorm.Component
}

func NewShoppingCartGORMDAO(db *egorm.Component) ShoppingCartDAO {
	return &shoppingCartGORMDAO{db: db}
}

func (g *shoppingCartGORMDAO) FindByUID(ctx context.Context, uid int64) ([]ShoppingCart, error) {
	var lines []ShoppingCart
	err := g.db.WithContext(ctx).Order("ctime ASC").Find(&lines, "uid = ?", uid).Error
	return lines, err
}

func (g *shoppingCartGORMDAO) FindLine(ctx context.Context, uid, dishID, setmealID int64, flavor string) (ShoppingCart, error) {
	var line ShoppingCart
	err := g.db.WithContext(ctx).
		Where("uid = ? AND dish_id = ? AND setmeal_id = ? AND flavor = ?", uid, dishID, setmealID, flavor).
		First(&line).Error
	return line, err
}

func (g *shoppingCartGORMDAO) FindByID(ctx context.Context, id int64) (ShoppingCart, error) {
	var line ShoppingCart
	err := g.db.WithContext(ctx).First(&line, "id = ?", id).Error
	return line, err
}

func (g *shoppingCartGORMDAO) Insert(ctx context.Context, line ShoppingCart) (int64, error) {
	now := time.Now().UnixMilli()
	line.Ctime, line.Utime = now, now
	err := g.db.WithContext(ctx).Create(&line).Error
	return line.Id, err
}

func (g *shoppingCartGORMDAO) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	return g.db.WithContext(ctx).Model(&ShoppingCart{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (g *shoppingCartGORMDAO) DeleteLine(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Delete(&ShoppingCart{}, "id = ?", id).Error
}

func (g *shoppingCartGORMDAO) DeleteByUID(ctx context.Context, uid int64) error {
	return g.db.WithContext(ctx).Delete(&ShoppingCart{}, "uid = ?", uid).Error
}

func (g *shoppingCartGORMDAO) DeleteByUIDTx(tx *egorm.Component, uid int64) error {
	return tx.Delete(&ShoppingCart{}, "uid = ?", uid).Error
}

type ShoppingCart struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:购物车行自增ID"`
	Uid       int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	DishId    int64  `gorm:"not null;default:0;comment:菜品ID, 与套餐ID二选一"`
	SetmealId int64  `gorm:"not null;default:0;comment:套餐ID, 与菜品ID二选一"`
	Flavor    string `gorm:"type:varchar(255);not null;default:'';comment:口味描述"`
	Name      string `gorm:"type:varchar(255);not null;comment:冗余的菜品/套餐名称"`
	Image     string `gorm:"type:varchar(512);comment:冗余的菜品/套餐图片"`
	Price     int64  `gorm:"not null;comment:冗余的单价;单位为分, 999表示9.99元"`
	Quantity  int64  `gorm:"not null;default:1;comment:数量"`
	Ctime     int64
	Utime     int64
}
