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

	"github.com/ecodeclub/takeaway/internal/address/internal/domain"
	"github.com/ecodeclub/takeaway/internal/address/internal/repository"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("地址不存在")

//go:generate mockgen -source=./service.go -package=addressmocks -destination=../../mocks/address.mock.go -typed Service
type Service interface {
	// FindByIDAndUID 校验归属, 查不到或者不属于 uid 都返回 ErrAddressNotFound
	FindByIDAndUID(ctx context.Context, uid, id int64) (domain.Address, error)
	List(ctx context.Context, uid int64) ([]domain.Address, error)
	Save(ctx context.Context, a domain.Address) (int64, error)
}

type service struct {
	repo repository.AddressRepository
}

func NewService(repo repository.AddressRepository) Service {
	return &service{repo: repo}
}

func (s *service) FindByIDAndUID(ctx context.Context, uid, id int64) (domain.Address, error) {
	res, err := s.repo.FindByIDAndUID(ctx, uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Address{}, fmt.Errorf("%w: uid=%d, id=%d", ErrAddressNotFound, uid, id)
	}
	return res, err
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) Save(ctx context.Context, a domain.Address) (int64, error) {
	return s.repo.Create(ctx, a)
}
