package errx

// 跨包统一的系统类错误码。
//
// 约束：
// - 这里只放“技术类”错误码（依赖不可用、超时、内部错误），便于日志检索与告警
// - 领域错误码（例如 TILEMAP_MALFORMED）由各领域包自行定义

const (
	// CodeInternal 服务内部不可预期错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 依赖不可用（Mongo/MySQL/文件系统/actor 系统等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeTimeout 请求或依赖调用超时。
	CodeTimeout Code = "TIMEOUT"
	// CodeReqParamError 请求参数错误。
	CodeReqParamError Code = "CODE_REQ_PARAM_ERROR"
	// CodeNotFound 请求的资源不存在（地图会话、预设等）。
	CodeNotFound Code = "NOT_FOUND"
)

// 系统类哨兵错误，只能通过 WithData/WithCause 派生，不要直接修改。
var (
	ErrInternal    = NewSys(CodeInternal, "服务器内部错误")
	ErrUnavailable = NewSys(CodeUnavailable, "服务不可用")
	ErrTimeout     = NewSys(CodeTimeout, "请求超时")
	ErrReqParamERR = NewBiz(CodeReqParamError, "请求参数错误")
	ErrNotFound    = NewBiz(CodeNotFound, "资源不存在")
)
