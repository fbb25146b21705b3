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

// Address 用户地址簿中的一条记录
// 下单时只在快照里复制一份, 之后订单与地址簿不再有任何关联
type Address struct {
	ID        int64
	UID       int64
	Consignee string
	Phone     string
	Detail    string
	IsDefault bool
}
