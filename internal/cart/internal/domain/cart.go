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

// CartLine 购物车中的一行, 菜品和套餐二选一
// Name/Image/Price 在加入购物车时从菜单冗余过来, 下单时不再重新解析
type CartLine struct {
	ID        int64
	UID       int64
	DishID    int64
	SetmealID int64
	// Flavor 口味描述, 例如"微辣,少冰"
	Flavor   string
	Name     string
	Image    string
	Price    int64
	Quantity int64
	Ctime    int64
	Utime    int64
}

// IsDish 购物车行指向菜品还是套餐
func (c CartLine) IsDish() bool {
	return c.DishID > 0
}

// Amount 该行小计
func (c CartLine) Amount() int64 {
	return c.Price * c.Quantity
}
