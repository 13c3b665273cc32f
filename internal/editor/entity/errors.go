package entity

import "HexRealm/modules/kit/errx"

const (
	CodeMapNotFound   errx.Code = "EDITOR_MAP_NOT_FOUND"
	CodeUnknownPlayer errx.Code = "EDITOR_UNKNOWN_PLAYER"
	CodeUnknownTool   errx.Code = "EDITOR_UNKNOWN_TOOL"
	CodeInvalidPlayer errx.Code = "EDITOR_INVALID_PLAYER"
)

var (
	ErrMapNotFound   = errx.NewBiz(CodeMapNotFound, "地图不存在")
	ErrUnknownPlayer = errx.NewBiz(CodeUnknownPlayer, "玩家不存在")
	ErrUnknownTool   = errx.NewBiz(CodeUnknownTool, "未知的编辑工具")
	ErrInvalidPlayer = errx.NewBiz(CodeInvalidPlayer, "玩家名称或颜色为空")
)
