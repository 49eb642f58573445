package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/application/internal/errs"
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
		Code: errs.ApplicationNotFound.Code,
		Msg:  errs.ApplicationNotFound.Msg,
	}
	duplicateResult = ginx.Result{
		Code: errs.DuplicateApplication.Code,
		Msg:  errs.DuplicateApplication.Msg,
	}
	stageConflictResult = ginx.Result{
		Code: errs.StageConflict.Code,
		Msg:  errs.StageConflict.Msg,
	}
	finalStageResult = ginx.Result{
		Code: errs.FinalStage.Code,
		Msg:  errs.FinalStage.Msg,
	}
	overrideDisabledResult = ginx.Result{
		Code: errs.OverrideDisabled.Code,
		Msg:  errs.OverrideDisabled.Msg,
	}
)
