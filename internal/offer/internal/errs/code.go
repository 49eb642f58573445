package errs

var (
	SystemError    = ErrorCode{Code: 605001, Msg: "系统错误"}
	InvalidInput   = ErrorCode{Code: 605002, Msg: "非法输入"}
	OfferNotFound  = ErrorCode{Code: 605003, Msg: "Offer不存在"}
	StatusConflict = ErrorCode{Code: 605004, Msg: "Offer状态不允许该操作"}
	// OfferExpired 是冲突类里的细分：605004 可能是并发抢先，重试或刷新后还有机会，
	// 605005 的过期是终态，客户端不应重试
	OfferExpired   = ErrorCode{Code: 605005, Msg: "Offer已过期"}
	DuplicateOffer = ErrorCode{Code: 605006, Msg: "该申请已存在Offer"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
