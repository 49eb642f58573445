package errs

var (
	SystemError      = ErrorCode{Code: 602001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 602002, Msg: "非法输入"}
	PositionNotFound = ErrorCode{Code: 602003, Msg: "岗位不存在"}
	DuplicateReqID   = ErrorCode{Code: 602004, Msg: "招聘需求编号已存在"}
	DistrictMismatch = ErrorCode{Code: 602005, Msg: "跨学区操作被拒绝"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
