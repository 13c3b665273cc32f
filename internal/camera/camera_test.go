package camera

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestScreenWorld_互为逆运算(t *testing.T) {
	views := []View{DefaultView(), {X: 10, Y: -5, Zoom: 2}, {X: 0, Y: 0, Zoom: MaxZoom}}
	for _, v := range views {
		for _, p := range []Point{{0, 0}, {123.5, 77}, {-40, 900}} {
			if got := WorldToScreen(v, ScreenToWorld(v, p)); !near(got, p) {
				t.Fatalf("view=%+v p=%v 往返得到 %v", v, p, got)
			}
		}
	}
}

func TestTileWorld_互为逆运算(t *testing.T) {
	l := NewLayout(32)
	for column := -3; column < 12; column++ {
		for row := -2; row < 9; row++ {
			c, r := WorldToTile(l, TileToWorld(l, column, row))
			if c != column || r != row {
				t.Fatalf("(%d,%d) 往返得到 (%d,%d)", column, row, c, r)
			}
		}
	}
}

func TestTileToWorld_偶数列下移半格(t *testing.T) {
	l := NewLayout(10)
	even := TileToWorld(l, 0, 0)
	odd := TileToWorld(l, 1, 0)
	if math.Abs(even.Y-odd.Y-l.Apothem) > eps {
		t.Fatalf("偶数列应比奇数列低一个边心距 even=%v odd=%v", even, odd)
	}
	if math.Abs(odd.X-even.X-15) > eps {
		t.Fatalf("列间距应为 1.5 倍边长, got=%v", odd.X-even.X)
	}
}

func TestZoomed_锚点不动且限制范围(t *testing.T) {
	v := View{X: 0, Y: 0, Zoom: 1}
	anchor := Point{200, 150}
	before := ScreenToWorld(v, anchor)
	z := v.Zoomed(ZoomStep, anchor)
	if after := ScreenToWorld(z, anchor); !near(before, after) {
		t.Fatalf("缩放后锚点位置改变 before=%v after=%v", before, after)
	}
	for i := 0; i < 50; i++ {
		z = z.Zoomed(ZoomStep, anchor)
	}
	if z.Zoom != MaxZoom {
		t.Fatalf("缩放应被限制在 MaxZoom, got=%v", z.Zoom)
	}
	if ClampZoom(0) != MinZoom {
		t.Fatalf("ClampZoom 下限不符合预期")
	}
}

func TestPanned_屏幕平移(t *testing.T) {
	v := View{X: 10, Y: 10, Zoom: 2}.Panned(20, -40)
	if v.X != 0 || v.Y != 30 || v.Zoom != 2 {
		t.Fatalf("Panned 结果不符合预期: %+v", v)
	}
}

func TestVisibleRange_覆盖画布并可裁剪(t *testing.T) {
	l := NewLayout(20)
	v := View{X: 0, Y: 0, Zoom: 1}
	r := VisibleRange(v, l, 300, 200)
	if r.MinColumn > 0 || r.MinRow > 0 {
		t.Fatalf("范围应从 0 或更小开始: %+v", r)
	}
	// 画布右下角所在瓦片必须落在范围内
	c, row := ScreenToTile(v, l, Point{300, 200})
	if c >= r.MaxColumn || row >= r.MaxRow {
		t.Fatalf("右下角瓦片 (%d,%d) 不在范围 %+v 内", c, row, r)
	}
	clipped := r.Clip(5, 3)
	if clipped.MinColumn != 0 || clipped.MaxColumn != 5 || clipped.MaxRow != 3 {
		t.Fatalf("Clip 结果不符合预期: %+v", clipped)
	}
}

func TestHexOutline_六个顶点到中心距离(t *testing.T) {
	l := NewLayout(10)
	pts := HexOutline(l, 2)
	if pts[2].X != 20 || pts[5].X != -20 {
		t.Fatalf("左右顶点应在 ±side*zoom: %v", pts)
	}
	for _, p := range pts {
		if d := math.Hypot(p.X, p.Y); math.Abs(d-20) > 1e-6 {
			t.Fatalf("正六边形顶点到中心距离应为 20, got=%v", d)
		}
	}
}
