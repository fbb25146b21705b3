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

package catalog

import (
	"github.com/ecodeclub/takeaway/internal/catalog/internal/domain"
	"github.com/ecodeclub/takeaway/internal/catalog/internal/service"
)

type (
	Dish    = domain.Dish
	Setmeal = domain.Setmeal
	Service = service.Service
)

const (
	StatusOnSale  = domain.StatusOnSale
	StatusOffSale = domain.StatusOffSale
)

var ErrItemNotFound = service.ErrItemNotFound

type Module struct {
	Svc Service
}
