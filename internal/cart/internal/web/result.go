package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/takeaway/internal/cart/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCartLineResult = ginx.Result{
		Code: errs.InvalidCartLine.Code,
		Msg:  errs.InvalidCartLine.Msg,
	}
	itemOffSaleResult = ginx.Result{
		Code: errs.ItemOffSale.Code,
		Msg:  errs.ItemOffSale.Msg,
	}
)
