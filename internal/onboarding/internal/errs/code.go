package errs

var (
	SystemError        = ErrorCode{Code: 606001, Msg: "系统错误"}
	InvalidInput       = ErrorCode{Code: 606002, Msg: "非法输入"}
	CandidateNotFound  = ErrorCode{Code: 606003, Msg: "候选人不存在"}
	TokenExpired       = ErrorCode{Code: 606004, Msg: "访问令牌已过期"}
	SectionsIncomplete = ErrorCode{Code: 606005, Msg: "分区尚未全部完成"}
	AlreadySubmitted   = ErrorCode{Code: 606006, Msg: "入职表单已提交"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
