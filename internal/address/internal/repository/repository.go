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
	"github.com/ecodeclub/takeaway/internal/address/internal/domain"
	"github.com/ecodeclub/takeaway/internal/address/internal/repository/dao"
)

type AddressRepository interface {
	FindByIDAndUID(ctx context.Context, uid, id int64) (domain.Address, error)
	FindByUID(ctx context.Context, uid int64) ([]domain.Address, error)
	FindDefaultByUID(ctx context.Context, uid int64) (domain.Address, error)
	Create(ctx context.Context, a domain.Address) (int64, error)
}

type addressRepository struct {
	dao dao.AddressDAO
}

func NewRepository(d dao.AddressDAO) AddressRepository {
	return &addressRepository{dao: d}
}

func (a *addressRepository) FindByIDAndUID(ctx context.Context, uid, id int64) (domain.Address, error) {
	res, err := a.dao.FindByIDAndUID(ctx, uid, id)
	if err != nil {
		return domain.Address{}, err
	}
	return a.toDomain(res), nil
}

func (a *addressRepository) FindByUID(ctx context.Context, uid int64) ([]domain.Address, error) {
	res, err := a.dao.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.AddressBook) domain.Address {
		return a.toDomain(src)
	}), nil
}

func (a *addressRepository) FindDefaultByUID(ctx context.Context, uid int64) (domain.Address, error) {
	res, err := a.dao.FindDefaultByUID(ctx, uid)
	if err != nil {
		return domain.Address{}, err
	}
	return a.toDomain(res), nil
}

func (a *addressRepository) Create(ctx context.Context, addr domain.Address) (int64, error) {
	return a.dao.Insert(ctx, a.toEntity(addr))
}

func (a *addressRepository) toDomain(e dao.AddressBook) domain.Address {
	return domain.Address{
		ID:        e.ID,
		UID:       e.UID,
		Consignee: e.Consignee,
		Phone:     e.Phone,
		Detail:    e.Detail,
		IsDefault: e.IsDefault == 1,
	}
}

func (a *addressRepository) toEntity(d domain.Address) dao.AddressBook {
	var isDefault uint8
	if d.IsDefault {
		isDefault = 1
	}
	return dao.AddressBook{
		ID:        d.ID,
		UID:       d.UID,
		Consignee: d.Consignee,
		Phone:     d.Phone,
		Detail:    d.Detail,
		IsDefault: isDefault,
	}
}
