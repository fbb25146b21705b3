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

type AddressDAO interface {
	FindByIDAndUID(ctx context.Context, uid, id int64) (AddressBook, error)
	FindByUID(ctx context.Context, uid int64) ([]AddressBook, error)
	FindDefaultByUID(ctx context.Context, uid int64) (AddressBook, error)
	Insert(ctx context.Context, a AddressBook) (int64, error)
}

type gormAddressDAO struct {
	db *egorm.Component
}

func NewGORMAddressDAO(db *egorm.Component) AddressDAO {
	return &gormAddressDAO{db: db}
}

func (g *gormAddressDAO) FindByIDAndUID(ctx context.Context, uid, id int64) (AddressBook, error) {
	var res AddressBook
	err := g.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&res).Error
	return res, err
}

func (g *gormAddressDAO) FindByUID(ctx context.Context, uid int64) ([]AddressBook, error) {
	var res []AddressBook
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (g *gormAddressDAO) FindDefaultByUID(ctx context.Context, uid int64) (AddressBook, error) {
	var res AddressBook
	err := g.db.WithContext(ctx).
		Where("uid = ? AND is_default = ?", uid, 1).
		First(&res).Error
	return res, err
}

func (g *gormAddressDAO) Insert(ctx context.Context, a AddressBook) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := g.db.WithContext(ctx).Create(&a).Error
	return a.ID, err
}

type AddressBook struct {
	ID        int64  `gorm:"primaryKey,autoIncrement;comment:地址簿自增ID"`
	UID       int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	Consignee string `gorm:"type:varchar(64);not null;comment:收货人"`
	Phone     string `gorm:"type:varchar(16);not null;comment:收货人手机号"`
	Detail    string `gorm:"type:varchar(256);not null;comment:详细地址"`
	IsDefault uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:是否默认地址 0-否 1-是"`
	Ctime     int64
	Utime     int64
}

func (AddressBook) TableName() string {
	return "address_books"
}
