package errs

var (
	SystemError            = ErrorCode{Code: 508001, Msg: "系统错误"}
	OrderNotFound          = ErrorCode{Code: 508002, Msg: "订单不存在"}
	AddressNotFound        = ErrorCode{Code: 508003, Msg: "收货地址不存在"}
	EmptyCart              = ErrorCode{Code: 508004, Msg: "购物车为空"}
	InvalidStateTransition = ErrorCode{Code: 508005, Msg: "订单状态不允许该操作"}
	DuplicateRequest       = ErrorCode{Code: 508006, Msg: "重复请求"}
	AlreadyPaid            = ErrorCode{Code: 508007, Msg: "订单已支付"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
