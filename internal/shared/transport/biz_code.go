package transport

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
type BizCode int

// 业务码与 access 日志级别对应：0 INFO，1~499 WARN，>=500 ERROR。
const (
	OK           = 0
	InvalidParam = 400
	NotFound     = 404
	SystemError  = 500
)
