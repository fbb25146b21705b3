package event

const (
	orderEvents   = "order_events"
	PaymentEvents = "payment_events"
)

// OrderEvent 订单状态变更的对外广播, 下游只关心订单号和新状态
type OrderEvent struct {
	OrderSN string
	Status  uint8
}

// PaymentEvent 支付模块发出的支付结果, 结构与支付模块保持一致
type PaymentEvent struct {
	OrderSN string
	Status  uint8
}
