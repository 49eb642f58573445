package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/offer/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.OfferNotFound.Code,
		Msg:  errs.OfferNotFound.Msg,
	}
	statusConflictResult = ginx.Result{
		Code: errs.StatusConflict.Code,
		Msg:  errs.StatusConflict.Msg,
	}
	expiredResult = ginx.Result{
		Code: errs.OfferExpired.Code,
		Msg:  errs.OfferExpired.Msg,
	}
	duplicateResult = ginx.Result{
		Code: errs.DuplicateOffer.Code,
		Msg:  errs.DuplicateOffer.Msg,
	}
)
