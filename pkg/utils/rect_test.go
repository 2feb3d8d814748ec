package utils

import (
	"math"
	"testing"
)

// TestNewRect 验证左上角 + 宽高构造
func TestNewRect(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.XMin() != 10 || r.YMin() != 20 {
		t.Errorf("min: got (%v,%v), want (10,20)", r.XMin(), r.YMin())
	}
	if r.XMax() != 40 || r.YMax() != 60 {
		t.Errorf("max: got (%v,%v), want (40,60)", r.XMax(), r.YMax())
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("size: got (%v,%v), want (30,40)", r.Width(), r.Height())
	}
}

// TestRectEdgeSetters 验证设置一条边时对边保持不动
func TestRectEdgeSetters(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	r.SetXMin(20)
	if r.XMax() != 100 || r.Width() != 80 {
		t.Errorf("SetXMin: got xMax=%v width=%v, want 100 / 80", r.XMax(), r.Width())
	}

	r.SetYMin(10)
	if r.YMax() != 50 || r.Height() != 40 {
		t.Errorf("SetYMin: got yMax=%v height=%v, want 50 / 40", r.YMax(), r.Height())
	}

	r.SetXMax(60)
	if r.XMin() != 20 || r.Width() != 40 {
		t.Errorf("SetXMax: got xMin=%v width=%v, want 20 / 40", r.XMin(), r.Width())
	}

	r.SetYMax(30)
	if r.YMin() != 10 || r.Height() != 20 {
		t.Errorf("SetYMax: got yMin=%v height=%v, want 10 / 20", r.YMin(), r.Height())
	}
}

// TestRectSetWidthKeepsLeftEdge 宽度缩放只移动右边
func TestRectSetWidthKeepsLeftEdge(t *testing.T) {
	r := NewRect(5, 5, 100, 10)
	r.SetWidth(r.Width() * 0.25)

	if r.XMin() != 5 {
		t.Errorf("xMin: got %v, want 5", r.XMin())
	}
	if r.XMax() != 30 {
		t.Errorf("xMax: got %v, want 30", r.XMax())
	}

	r.SetHeight(4)
	if r.YMin() != 5 || r.YMax() != 9 {
		t.Errorf("height: got y=[%v,%v], want [5,9]", r.YMin(), r.YMax())
	}
}

// TestRectInset 验证四边收缩，包括越界后的边交叉
func TestRectInset(t *testing.T) {
	tests := []struct {
		name       string
		rect       Rect
		inset      float64
		wantWidth  float64
		wantHeight float64
		wantXMin   float64
	}{
		{
			name:       "普通收缩",
			rect:       NewRect(0, 0, 100, 30),
			inset:      4,
			wantWidth:  92,
			wantHeight: 22,
			wantXMin:   4,
		},
		{
			name:       "零收缩",
			rect:       NewRect(10, 10, 20, 20),
			inset:      0,
			wantWidth:  20,
			wantHeight: 20,
			wantXMin:   10,
		},
		{
			name:       "收缩超过半宽，边交叉",
			rect:       NewRect(0, 0, 30, 30),
			inset:      20,
			wantWidth:  -10,
			wantHeight: -10,
			wantXMin:   20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rect.Inset(tt.inset)
			if got.Width() != tt.wantWidth {
				t.Errorf("Width: got %v, want %v", got.Width(), tt.wantWidth)
			}
			if got.Height() != tt.wantHeight {
				t.Errorf("Height: got %v, want %v", got.Height(), tt.wantHeight)
			}
			if got.XMin() != tt.wantXMin {
				t.Errorf("XMin: got %v, want %v", got.XMin(), tt.wantXMin)
			}
		})
	}
}

// TestRectIsDrawable 验证退化矩形不可绘制
func TestRectIsDrawable(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"正常", NewRect(0, 0, 10, 10), true},
		{"零宽", NewRect(0, 0, 0, 10), false},
		{"零高", NewRect(0, 0, 10, 0), false},
		{"负宽", NewRect(0, 0, -5, 10), false},
		{"NaN 宽", NewRect(0, 0, math.NaN(), 10), false},
		{"无穷宽", NewRect(0, 0, math.Inf(1), 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.IsDrawable(); got != tt.want {
				t.Errorf("IsDrawable: got %v, want %v", got, tt.want)
			}
		})
	}
}
