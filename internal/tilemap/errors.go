package tilemap

import "HexRealm/modules/kit/errx"

type Code = errx.Code

type Error = errx.Error

const (
	CodeMalformedTilemap Code = "TILEMAP_MALFORMED"
	CodeUnknownTileType  Code = "TILEMAP_UNKNOWN_TILE_TYPE"
	CodeInvalidSize      Code = "TILEMAP_INVALID_SIZE"
	CodeUnknownPolicy    Code = "TILEMAP_UNKNOWN_POLICY"
	CodePresetNotFound   Code = "TILEMAP_PRESET_NOT_FOUND"
)

var (
	// ErrMalformedTilemap 只由反序列化返回，cause 挂底层解析错误，reason 说明哪条规则不满足。
	ErrMalformedTilemap = errx.NewBiz(CodeMalformedTilemap, "地图数据格式错误")
	ErrUnknownTileType  = errx.NewBiz(CodeUnknownTileType, "未知的地形类型")
	ErrInvalidSize      = errx.NewBiz(CodeInvalidSize, "地图尺寸不合法")
	ErrUnknownPolicy    = errx.NewBiz(CodeUnknownPolicy, "未知的生成策略")
	ErrPresetNotFound   = errx.NewBiz(CodePresetNotFound, "预设地图不存在")
)

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

var (
	ReasonInvalidJSON        = Reason{Code: "INVALID_JSON", Message: "不是合法的 JSON"}
	ReasonMissingField       = Reason{Code: "MISSING_FIELD", Message: "缺少必填字段"}
	ReasonUnsupportedVersion = Reason{Code: "UNSUPPORTED_VERSION", Message: "不支持的格式版本"}
	ReasonNegativeSize       = Reason{Code: "NEGATIVE_SIZE", Message: "宽高不能为负"}
	ReasonSizeTooLarge       = Reason{Code: "SIZE_TOO_LARGE", Message: "宽高超出上限"}
	ReasonTileCount          = Reason{Code: "TILE_COUNT_MISMATCH", Message: "瓦片数量与宽高不符"}
	ReasonIndexOutOfRange    = Reason{Code: "INDEX_OUT_OF_RANGE", Message: "地形下标越界"}
	ReasonUnknownTileID      = Reason{Code: "UNKNOWN_TILE_ID", Message: "tileIds 中存在未知地形"}
)
