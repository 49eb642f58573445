package errs

var (
	SystemError      = ErrorCode{Code: 601001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 601002, Msg: "学区信息不完整"}
	DistrictNotFound = ErrorCode{Code: 601003, Msg: "学区不存在或已停用"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
