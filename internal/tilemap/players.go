package tilemap

// Player 只保存展示信息，身份由它在 Players 中的位置决定。
type Player struct {
	Name   string `json:"name"`
	Colour string `json:"colour"`
}

// Players 是有序的玩家表，瓦片和城池只持有 PlayerID。
type Players struct {
	list []Player
}

func NewPlayers(players ...Player) *Players {
	p := &Players{list: make([]Player, 0, len(players))}
	p.list = append(p.list, players...)
	return p
}

// DefaultPlayers 是编辑器启动时的六个玩家。
func DefaultPlayers() *Players {
	return NewPlayers(
		Player{Name: "Player 1", Colour: "#ff0000"},
		Player{Name: "Player 2", Colour: "#00ff00"},
		Player{Name: "Player 3", Colour: "#0000ff"},
		Player{Name: "Player 4", Colour: "#ffff00"},
		Player{Name: "Player 5", Colour: "#ff00ff"},
		Player{Name: "Player 6", Colour: "#00ffff"},
	)
}

// Add 追加玩家并返回它的 ID。
func (p *Players) Add(player Player) PlayerID {
	p.list = append(p.list, player)
	return PlayerID(len(p.list))
}

func (p *Players) Get(id PlayerID) (Player, bool) {
	if id <= NoPlayer || int(id) > len(p.list) {
		return Player{}, false
	}
	return p.list[id-1], true
}

func (p *Players) Has(id PlayerID) bool {
	_, ok := p.Get(id)
	return ok
}

func (p *Players) Len() int {
	return len(p.list)
}

// List 返回拷贝，下标 i 对应 PlayerID(i+1)。
func (p *Players) List() []Player {
	out := make([]Player, len(p.list))
	copy(out, p.list)
	return out
}
