package errs

var (
	SystemError       = ErrorCode{Code: 604001, Msg: "系统错误"}
	InvalidInput      = ErrorCode{Code: 604002, Msg: "非法输入"}
	InterviewNotFound = ErrorCode{Code: 604003, Msg: "面试不存在"}
	StatusConflict    = ErrorCode{Code: 604004, Msg: "面试状态冲突"}
	StageMismatch     = ErrorCode{Code: 604005, Msg: "面试轮次与申请岗位不匹配"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
