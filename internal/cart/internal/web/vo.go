package web

// AddCartLineReq 加购请求, 菜品和套餐二选一
type AddCartLineReq struct {
	DishID    int64  `json:"dishId,omitempty"`
	SetmealID int64  `json:"setmealId,omitempty"`
	Flavor    string `json:"flavor,omitempty"`
}

// UpsertQuantityReq 覆盖购物车行数量, 数量归零即删除该行
type UpsertQuantityReq struct {
	LineID   int64 `json:"lineId"`
	Quantity int64 `json:"quantity"`
}

type ListCartResp struct {
	Lines []CartLine `json:"lines,omitempty"`
	// TotalAmount 合计金额, 单位为分
	TotalAmount int64 `json:"totalAmount"`
}

type CartLine struct {
	ID        int64  `json:"id"`
	DishID    int64  `json:"dishId,omitempty"`
	SetmealID int64  `json:"setmealId,omitempty"`
	Flavor    string `json:"flavor,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}
