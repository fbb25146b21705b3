package errs

var (
	SystemError     = ErrorCode{Code: 507001, Msg: "系统错误"}
	InvalidCartLine = ErrorCode{Code: 507002, Msg: "购物车行不合法"}
	ItemOffSale     = ErrorCode{Code: 507003, Msg: "菜品或套餐已停售"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
