package utils

import "math"

// Rect 屏幕像素坐标下的浮点矩形（左上角为原点，Y 轴向下）
//
// 内部以 XMin/YMin/XMax/YMax 四条边保存：
//   - 设置 XMin/YMin 时保持 XMax/YMax 不变（宽高随之变化）
//   - 设置 XMax/YMax 或宽高时保持 XMin/YMin 不变
//
// 宽高允许为负（边交叉），由调用方决定是否绘制。
type Rect struct {
	xMin, yMin float64
	xMax, yMax float64
}

// NewRect 以左上角 + 宽高创建矩形
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		xMin: x,
		yMin: y,
		xMax: x + width,
		yMax: y + height,
	}
}

func (r Rect) XMin() float64 { return r.xMin }
func (r Rect) YMin() float64 { return r.yMin }
func (r Rect) XMax() float64 { return r.xMax }
func (r Rect) YMax() float64 { return r.yMax }

// Width 宽度（XMax - XMin，可能为负）
func (r Rect) Width() float64 { return r.xMax - r.xMin }

// Height 高度（YMax - YMin，可能为负）
func (r Rect) Height() float64 { return r.yMax - r.yMin }

// SetXMin 移动左边，右边不动
func (r *Rect) SetXMin(v float64) { r.xMin = v }

// SetYMin 移动上边，下边不动
func (r *Rect) SetYMin(v float64) { r.yMin = v }

// SetXMax 移动右边，左边不动
func (r *Rect) SetXMax(v float64) { r.xMax = v }

// SetYMax 移动下边，上边不动
func (r *Rect) SetYMax(v float64) { r.yMax = v }

// SetWidth 保持左边不动，调整右边
func (r *Rect) SetWidth(w float64) { r.xMax = r.xMin + w }

// SetHeight 保持上边不动，调整下边
func (r *Rect) SetHeight(h float64) { r.yMax = r.yMin + h }

// Inset 四边同时向内收缩 d 像素
// 不做钳制：d 超过半宽/半高时 Min 会越过 Max
func (r Rect) Inset(d float64) Rect {
	return Rect{
		xMin: r.xMin + d,
		yMin: r.yMin + d,
		xMax: r.xMax - d,
		yMax: r.yMax - d,
	}
}

// IsDrawable 宽高都为正数时才有可见面积
// NaN 参与比较恒为 false，因此 NaN 矩形同样不可绘制
func (r Rect) IsDrawable() bool {
	w, h := r.Width(), r.Height()
	if math.IsInf(w, 0) || math.IsInf(h, 0) {
		return false
	}
	return w > 0 && h > 0
}
