package messages

// MapMessage 由 manager 按 MapID 转发给持有该地图的 actor。
type MapMessage interface {
	MapID() string
}

type MapBaseMessage struct {
	MapId string
}

func (m MapBaseMessage) MapID() string {
	return m.MapId
}

// HMCreateMap 由 manager 自己处理；PresetData 已由调用方从预设目录取好。
type HMCreateMap struct {
	Width      int
	Height     int
	Policy     string
	Fill       string
	Seed       int64
	Preset     string
	PresetData string
}

type MHCreateMap struct {
	Summary MapSummary
}

type HMListMaps struct{}

type MHListMaps struct {
	MapIds []string
}

type HMCloseMap struct {
	MapBaseMessage
}

type HMMapSummary struct {
	MapBaseMessage
}

type MHMapSummary struct {
	Summary MapSummary
}

type HMGetTile struct {
	MapBaseMessage
	Column, Row int
}

type MHGetTile struct {
	Tile  MapTile
	Found bool
}

type HMSetTile struct {
	MapBaseMessage
	Column, Row int
	Type        string
}

// MHChanged 是所有修改类请求的应答，Coords 为空表示没有变化。
type MHChanged struct {
	Coords  []Coord
	Version uint64
}

type HMAdjacent struct {
	MapBaseMessage
	Column, Row int
}

type MHTiles struct {
	Tiles []MapTile
}

// HMFill 的 Type 为空时使用会话当前的画笔类型。
type HMFill struct {
	MapBaseMessage
	Column, Row int
	Type        string
}

// HMClaim 的 Player 为 0 时使用会话当前扮演的玩家。
type HMClaim struct {
	MapBaseMessage
	Column, Row int
	Player      int
}

type HMApplyTool struct {
	MapBaseMessage
	Column, Row int
}

type HMExport struct {
	MapBaseMessage
}

type MHExport struct {
	Data string
}

type HMImport struct {
	MapBaseMessage
	Data string
}

type HMListCities struct {
	MapBaseMessage
}

type MHCities struct {
	Cities []MapCity
}

type HMGetCity struct {
	MapBaseMessage
	Column, Row int
}

type MHGetCity struct {
	City  MapCity
	Found bool
}

type HMPutCity struct {
	MapBaseMessage
	City MapCity
}

type HMRemoveCity struct {
	MapBaseMessage
	Column, Row int
}

type HMListPlayers struct {
	MapBaseMessage
}

type MHPlayers struct {
	Players   []MapPlayer
	PlayingAs int
}

type HMAddPlayer struct {
	MapBaseMessage
	Name   string
	Colour string
}

type HMSetPlayingAs struct {
	MapBaseMessage
	Player int
}

// HMSelect 的 Coord 为 nil 表示清空选区。
type HMSelect struct {
	MapBaseMessage
	Coord *Coord
}

type MHSelection struct {
	Selected *Coord
	Tile     MapTile
	HasTile  bool
	City     MapCity
	HasCity  bool
}

// HMSetTool 中为空的字段保持原值。
type HMSetTool struct {
	MapBaseMessage
	Tool     string
	TileType string
}

type MHTool struct {
	Tool     string
	TileType string
}

// HMSetView 依次执行：覆盖相机（View 非空时）、平移、以锚点缩放（ZoomFactor 非 0 时）。
type HMSetView struct {
	MapBaseMessage
	View       *MapView
	PanX, PanY float64
	ZoomFactor float64
	AnchorX    float64
	AnchorY    float64
}

type MHView struct {
	View MapView
}

type HMFrame struct {
	MapBaseMessage
	CanvasW, CanvasH float64
}

type MHFrame struct {
	Frame MapFrame
}
