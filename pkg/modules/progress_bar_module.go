package modules

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/progressbar/pkg/config"
	"github.com/decker502/progressbar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas 立即模式绘制目标
// *ebiten.Image 直接满足此接口；测试中可替换为记录器
type Canvas interface {
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// FillImageFactory 根据颜色创建 1x1 纯色图片
type FillImageFactory func(c color.NRGBA) *ebiten.Image

// NewFillImage 默认工厂：创建 1x1 图片并填充颜色
func NewFillImage(c color.NRGBA) *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	return img
}

// ProgressBarModule 屏幕进度条模块
//
// 职责：
//   - 根据锚点配置计算边框矩形（屏幕像素坐标）
//   - 根据进度值计算内部填充条矩形
//   - 每帧绘制 4 条边框 + 1 个填充条（共用同一张 1x1 纯色图片）
//
// 生命周期：
//   - Init()：宿主激活模块时调用一次
//   - Draw()：宿主每帧调用一次，屏幕尺寸由参数传入
//   - Dispose()：释放持有的纯色图片
//
// Value / Anchor / Style 可以在两帧之间由外部直接修改，
// 颜色变化会在下一次 Draw 时生效。
type ProgressBarModule struct {
	// 外部可编辑配置
	Value  float64
	Anchor config.AnchorConfig
	Style  config.StyleConfig

	// 纯色图片缓存（以颜色值为 key）
	fillImage   *ebiten.Image
	cachedColor color.NRGBA
	hasCache    bool

	newFillImage FillImageFactory
}

// NewProgressBarModule 创建进度条模块
//
// 参数:
//   - cfg: 初始进度、锚点和样式
//
// 纯色图片延迟到 Init 或第一次 Draw 时创建。
func NewProgressBarModule(cfg config.ProgressBarConfig) *ProgressBarModule {
	return &ProgressBarModule{
		Value:        cfg.Value,
		Anchor:       cfg.Anchor,
		Style:        cfg.Style,
		newFillImage: NewFillImage,
	}
}

// SetFillImageFactory 替换纯色图片工厂（nil 恢复默认）
func (m *ProgressBarModule) SetFillImageFactory(factory FillImageFactory) {
	if factory == nil {
		factory = NewFillImage
	}
	m.newFillImage = factory
}

// Init 初始化钩子：构建首张纯色图片
func (m *ProgressBarModule) Init() {
	m.RefreshDrawResource()
}

// RefreshDrawResource 颜色与缓存不同时重建纯色图片
//
// 颜色按值精确比较；颜色不变时重复调用不会重建。
// 返回是否发生了重建。
func (m *ProgressBarModule) RefreshDrawResource() bool {
	if m.hasCache && m.cachedColor == m.Style.Color {
		return false
	}

	if m.fillImage != nil {
		m.fillImage.Deallocate()
	}
	m.fillImage = m.newFillImage(m.Style.Color)
	m.cachedColor = m.Style.Color
	m.hasCache = true

	log.Printf("[ProgressBarModule] Fill image rebuilt, color=%s alpha=%d",
		config.ColorToHex(m.cachedColor), m.cachedColor.A)
	return true
}

// FillImage 返回当前纯色图片（Init 之前为 nil）
func (m *ProgressBarModule) FillImage() *ebiten.Image {
	return m.fillImage
}

// BorderRect 计算边框矩形
//
// 初始位置为 (top*H, left*W)，尺寸为 (width*W, height*H)：
// top 比例作为水平起点、left 比例作为垂直起点，这是既定行为，不做"修正"。
//
// 覆盖规则：
//   - Right / TopRight / BottomRight：右边缘 = W - right*W，左边缘 = 右边缘 - 宽度
//   - Bottom / BottomLeft / BottomRight：下边缘 = H - bottom*H，上边缘 = 下边缘 - 高度
//   - Top / Left / TopLeft：不覆盖，三者效果相同
func (m *ProgressBarModule) BorderRect(screenWidth, screenHeight float64) utils.Rect {
	a := m.Anchor
	rect := utils.NewRect(
		a.Top*screenHeight,
		a.Left*screenWidth,
		a.Width*screenWidth,
		a.Height*screenHeight,
	)

	if a.Align.AnchorsRight() {
		padding := a.Right * screenWidth
		width := rect.Width()
		rect.SetXMin(screenWidth - padding - width)
		rect.SetXMax(screenWidth - padding)
	}

	if a.Align.AnchorsBottom() {
		padding := a.Bottom * screenHeight
		height := rect.Height()
		rect.SetYMin(screenHeight - padding - height)
		rect.SetYMax(screenHeight - padding)
	}

	return rect
}

// FillerRect 计算填充条矩形
//
// 边框四边各收缩 (borderWidth + borderPadding)，再按钳制后的进度缩放宽度。
// 左边缘固定，填充条始终向右增长。收缩量过大时宽高为负，不做钳制。
func (m *ProgressBarModule) FillerRect(border utils.Rect) utils.Rect {
	filler := border.Inset(m.Style.BorderWidth + m.Style.BorderPadding)
	filler.SetWidth(filler.Width() * clamp01(m.Value))
	return filler
}

// BorderSegments 返回 4 条边框（顺序：上、右、下、左），每条粗细为 borderWidth
func (m *ProgressBarModule) BorderSegments(border utils.Rect) [4]utils.Rect {
	bw := m.Style.BorderWidth
	return [4]utils.Rect{
		utils.NewRect(border.XMin(), border.YMin(), border.Width(), bw),
		utils.NewRect(border.XMax()-bw, border.YMin(), bw, border.Height()),
		utils.NewRect(border.XMin(), border.YMax()-bw, border.Width(), bw),
		utils.NewRect(border.XMin(), border.YMin(), bw, border.Height()),
	}
}

// Draw 每帧绘制钩子
//
// 流程：
//  1. 刷新纯色图片（颜色变化在本帧生效）
//  2. 计算边框矩形与填充条矩形
//  3. 绘制上、右、下、左 4 条边框
//  4. 绘制填充条
//
// 宽或高不为正的矩形（包括 NaN）跳过，不发出绘制调用。
func (m *ProgressBarModule) Draw(dst Canvas, screenWidth, screenHeight float64) {
	m.RefreshDrawResource()
	if m.fillImage == nil {
		return
	}

	border := m.BorderRect(screenWidth, screenHeight)
	filler := m.FillerRect(border)

	for _, segment := range m.BorderSegments(border) {
		m.drawRect(dst, segment)
	}
	m.drawRect(dst, filler)
}

// Dispose 释放纯色图片
func (m *ProgressBarModule) Dispose() {
	if m.fillImage != nil {
		m.fillImage.Deallocate()
		m.fillImage = nil
	}
	m.hasCache = false
}

// drawRect 将 1x1 纯色图片拉伸到目标矩形
func (m *ProgressBarModule) drawRect(dst Canvas, r utils.Rect) {
	if !r.IsDrawable() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width(), r.Height())
	op.GeoM.Translate(r.XMin(), r.YMin())
	dst.DrawImage(m.fillImage, op)
}

// clamp01 钳制到 [0,1]；NaN 原样返回
func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
