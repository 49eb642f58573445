package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/interview/internal/errs"
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
		Code: errs.InterviewNotFound.Code,
		Msg:  errs.InterviewNotFound.Msg,
	}
	statusConflictResult = ginx.Result{
		Code: errs.StatusConflict.Code,
		Msg:  errs.StatusConflict.Msg,
	}
	stageMismatchResult = ginx.Result{
		Code: errs.StageMismatch.Code,
		Msg:  errs.StageMismatch.Msg,
	}
)
