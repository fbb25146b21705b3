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

package domain

const (
	// StatusOnSale 起售
	StatusOnSale int64 = 1
	// StatusOffSale 停售
	StatusOffSale int64 = 0
)

// Dish 单品菜
type Dish struct {
	ID     int64
	Name   string
	Image  string
	// Price 单价, 单位为分, 999表示9.99元
	Price  int64
	Status int64
}

// Setmeal 套餐, 固定价格打包出售的菜品组合
type Setmeal struct {
	ID     int64
	Name   string
	Image  string
	Price  int64
	Status int64
}
