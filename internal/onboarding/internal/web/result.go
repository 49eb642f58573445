package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/errs"
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
		Code: errs.CandidateNotFound.Code,
		Msg:  errs.CandidateNotFound.Msg,
	}
	tokenExpiredResult = ginx.Result{
		Code: errs.TokenExpired.Code,
		Msg:  errs.TokenExpired.Msg,
	}
	incompleteResult = ginx.Result{
		Code: errs.SectionsIncomplete.Code,
		Msg:  errs.SectionsIncomplete.Msg,
	}
	alreadySubmittedResult = ginx.Result{
		Code: errs.AlreadySubmitted.Code,
		Msg:  errs.AlreadySubmitted.Msg,
	}
)
