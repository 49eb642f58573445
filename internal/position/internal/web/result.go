package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/position/internal/errs"
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
		Code: errs.PositionNotFound.Code,
		Msg:  errs.PositionNotFound.Msg,
	}
	duplicateReqIDResult = ginx.Result{
		Code: errs.DuplicateReqID.Code,
		Msg:  errs.DuplicateReqID.Msg,
	}
	districtMismatchResult = ginx.Result{
		Code: errs.DistrictMismatch.Code,
		Msg:  errs.DistrictMismatch.Msg,
	}
)
