package errs

var (
	SystemError          = ErrorCode{Code: 603001, Msg: "系统错误"}
	InvalidInput         = ErrorCode{Code: 603002, Msg: "非法输入"}
	ApplicationNotFound  = ErrorCode{Code: 603003, Msg: "申请不存在"}
	DuplicateApplication = ErrorCode{Code: 603004, Msg: "该岗位已投递过"}
	StageConflict        = ErrorCode{Code: 603005, Msg: "申请阶段冲突"}
	FinalStage           = ErrorCode{Code: 603006, Msg: "申请已处于终态"}
	OverrideDisabled     = ErrorCode{Code: 603007, Msg: "阶段强改未开启"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
