package messages

// FailResp 是 actor 拒绝请求时的统一应答，Err 通常是 errx 错误。
type FailResp struct {
	Err error
}

// MHOK 是没有载荷的成功应答。
type MHOK struct{}

// MapChanged 在地图内容变化后发布到 actor 系统的 EventStream。
type MapChanged struct {
	MapId   string
	Kind    string
	Coords  []Coord
	Version uint64
}

const (
	ChangeKindTile   = "tile"
	ChangeKindFill   = "fill"
	ChangeKindClaim  = "claim"
	ChangeKindCity   = "city"
	ChangeKindImport = "import"
	ChangeKindClosed = "closed"
)
