package event

const paymentEvents = "payment_events"

// PaymentEvent 最简设计, 订单侧只关心哪个订单变成了什么支付状态
// 后续如果要接入对账之类的, 再考虑把支付详情放进来
type PaymentEvent struct {
	OrderSN string
	Status  uint8
}
