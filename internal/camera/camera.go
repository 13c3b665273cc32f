// Package camera 负责屏幕坐标、世界坐标与六边形瓦片坐标之间的换算。
// 全部是无状态的纯函数，每一对换算互为逆运算。
package camera

import "math"

const (
	ZoomStep = 1.125
	// 缩放上下限：以 ZoomStep 为步长各走 8 步
	zoomSteps = 8
)

var (
	MaxZoom = math.Pow(ZoomStep, zoomSteps)
	MinZoom = math.Pow(ZoomStep, -zoomSteps)
)

// View 是相机：左上角的世界坐标与缩放倍数。
type View struct {
	X    float64 `json:"x" mapstructure:"x"`
	Y    float64 `json:"y" mapstructure:"y"`
	Zoom float64 `json:"zoom" mapstructure:"zoom"`
}

// DefaultView 是编辑器打开时的相机位置。
func DefaultView() View {
	return View{X: -128, Y: -128, Zoom: MinZoom}
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout 是六边形尺寸：Side 为边长（中心到顶点），Apothem 为中心到边的距离。
type Layout struct {
	Side    float64 `json:"side" mapstructure:"side"`
	Apothem float64 `json:"apothem" mapstructure:"apothem"`
}

// NewLayout 按正六边形由边长推出边心距。
func NewLayout(side float64) Layout {
	return Layout{Side: side, Apothem: side * math.Sqrt(3) / 2}
}

func (l Layout) xGap() float64 { return l.Side * 1.5 }
func (l Layout) yGap() float64 { return l.Apothem * 2 }

// yOffset 偶数列向下错开半格。
func (l Layout) yOffset(column int) float64 {
	if column%2 != 0 {
		return 0
	}
	return l.Apothem
}

func (v View) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

func ScreenToWorld(v View, screen Point) Point {
	return Point{
		X: screen.X/v.zoom() + v.X,
		Y: screen.Y/v.zoom() + v.Y,
	}
}

func WorldToScreen(v View, world Point) Point {
	return Point{
		X: (world.X - v.X) * v.zoom(),
		Y: (world.Y - v.Y) * v.zoom(),
	}
}

// TileToWorld 返回瓦片中心的世界坐标。
func TileToWorld(l Layout, column, row int) Point {
	return Point{
		X: float64(column)*l.xGap() + l.Side,
		Y: float64(row)*l.yGap() + l.Apothem + l.yOffset(column),
	}
}

// WorldToTile 取离世界坐标最近的瓦片中心（先定列，再按该列的错位定行）。
func WorldToTile(l Layout, world Point) (column, row int) {
	column = int(math.Round((world.X - l.Side) / l.xGap()))
	row = int(math.Round((world.Y - l.Apothem - l.yOffset(column)) / l.yGap()))
	return column, row
}

// ScreenToTile 是屏幕点击到瓦片坐标的快捷换算。
func ScreenToTile(v View, l Layout, screen Point) (column, row int) {
	return WorldToTile(l, ScreenToWorld(v, screen))
}

// ClampZoom 把缩放限制在 [MinZoom, MaxZoom]。
func ClampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// Zoomed 以屏幕上的 anchor 为不动点缩放 factor 倍。
func (v View) Zoomed(factor float64, anchor Point) View {
	world := ScreenToWorld(v, anchor)
	z := ClampZoom(v.zoom() * factor)
	return View{
		X:    world.X - anchor.X/z,
		Y:    world.Y - anchor.Y/z,
		Zoom: z,
	}
}

// Panned 按屏幕像素平移相机。
func (v View) Panned(dx, dy float64) View {
	return View{
		X:    v.X - dx/v.zoom(),
		Y:    v.Y - dy/v.zoom(),
		Zoom: v.Zoom,
	}
}

// Range 是半开区间 [MinColumn,MaxColumn) × [MinRow,MaxRow)。
type Range struct {
	MinColumn int `json:"minColumn"`
	MaxColumn int `json:"maxColumn"`
	MinRow    int `json:"minRow"`
	MaxRow    int `json:"maxRow"`
}

// VisibleRange 估算画布内可见的瓦片范围，四周各多留一个六边形的余量。
func VisibleRange(v View, l Layout, canvasW, canvasH float64) Range {
	z := v.zoom()
	return Range{
		MinColumn: int(math.Floor((v.X - l.Side) / l.xGap())),
		MaxColumn: int(math.Ceil((v.X + l.Side + canvasW/z) / l.xGap())),
		MinRow:    int(math.Floor((v.Y - 2*l.Apothem) / l.yGap())),
		MaxRow:    int(math.Ceil((v.Y + l.Apothem + canvasH/z) / l.yGap())),
	}
}

// Clip 把范围裁剪到 width×height 的地图内。
func (r Range) Clip(width, height int) Range {
	return Range{
		MinColumn: max(r.MinColumn, 0),
		MaxColumn: min(r.MaxColumn, width),
		MinRow:    max(r.MinRow, 0),
		MaxRow:    min(r.MaxRow, height),
	}
}

// HexOutline 返回以中心为原点、按缩放后的屏幕尺寸排列的六个顶点，
// 从左上顶点开始顺时针。
func HexOutline(l Layout, zoom float64) [6]Point {
	s, a := l.Side*zoom, l.Apothem*zoom
	return [6]Point{
		{-s / 2, -a},
		{s / 2, -a},
		{s, 0},
		{s / 2, a},
		{-s / 2, a},
		{-s, 0},
	}
}
