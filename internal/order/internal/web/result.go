package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/takeaway/internal/order/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	addressNotFoundResult = ginx.Result{
		Code: errs.AddressNotFound.Code,
		Msg:  errs.AddressNotFound.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
	invalidStateTransitionResult = ginx.Result{
		Code: errs.InvalidStateTransition.Code,
		Msg:  errs.InvalidStateTransition.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
	alreadyPaidResult = ginx.Result{
		Code: errs.AlreadyPaid.Code,
		Msg:  errs.AlreadyPaid.Msg,
	}
)
