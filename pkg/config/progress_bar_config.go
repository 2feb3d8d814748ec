package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ==============================
// 进度条配置
// ==============================
// 配置文件位置: data/progress_bar.yaml
//
// 所有锚点参数都是屏幕尺寸的比例（0~1），进度条本身不做范围检查：
// 越界的比例会得到屏幕外或退化的矩形，由调用方负责。

var (
	// ErrUnknownAlign 对齐方式名称无法识别
	ErrUnknownAlign = errors.New("unknown progress bar align")
	// ErrInvalidColor 颜色字符串或透明度非法
	ErrInvalidColor = errors.New("invalid progress bar color")
)

// Align 进度条锚定的屏幕边或角
type Align int

const (
	AlignTop Align = iota
	AlignTopRight
	AlignRight
	AlignBottomRight
	AlignBottom
	AlignBottomLeft
	AlignLeft
	AlignTopLeft
)

// alignNames 顺序与常量定义一致
var alignNames = [...]string{
	"Top",
	"TopRight",
	"Right",
	"BottomRight",
	"Bottom",
	"BottomLeft",
	"Left",
	"TopLeft",
}

// String 返回对齐方式名称（如 "TopRight"）
func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Align(%d)", int(a))
	}
	return alignNames[a]
}

// ParseAlign 解析对齐方式名称（大小写不敏感）
func ParseAlign(name string) (Align, error) {
	for i, n := range alignNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Align(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlign, name)
}

// Next 返回下一个对齐方式（循环），供演示程序切换使用
func (a Align) Next() Align {
	return Align((int(a) + 1) % len(alignNames))
}

// AnchorsRight 右侧对齐：使用 right 作为右边距
func (a Align) AnchorsRight() bool {
	return a == AlignRight || a == AlignTopRight || a == AlignBottomRight
}

// AnchorsBottom 底部对齐：使用 bottom 作为下边距
func (a Align) AnchorsBottom() bool {
	return a == AlignBottom || a == AlignBottomLeft || a == AlignBottomRight
}

// MarshalYAML 以名称形式输出
func (a Align) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML 从名称解析
func (a *Align) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseAlign(name)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// AnchorConfig 进度条锚点配置（屏幕比例）
type AnchorConfig struct {
	Align Align `yaml:"align"`

	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// StyleConfig 进度条样式
//
// YAML 中颜色写作 "#rrggbb" + alpha（0~1），内存中保存为非预乘的 NRGBA，
// 便于按值精确比较。
type StyleConfig struct {
	Color         color.NRGBA
	BorderWidth   float64 // 边框粗细（像素）
	BorderPadding float64 // 边框与填充条之间的间距（像素）
}

// styleYAML StyleConfig 的文件表示
type styleYAML struct {
	Color         string  `yaml:"color"`
	Alpha         float64 `yaml:"alpha"`
	BorderWidth   float64 `yaml:"borderWidth"`
	BorderPadding float64 `yaml:"borderPadding"`
}

// MarshalYAML 输出文件表示
func (s StyleConfig) MarshalYAML() (interface{}, error) {
	return styleYAML{
		Color:         ColorToHex(s.Color),
		Alpha:         float64(s.Color.A) / 255,
		BorderWidth:   s.BorderWidth,
		BorderPadding: s.BorderPadding,
	}, nil
}

// UnmarshalYAML 解析文件表示，缺失的字段保留当前值
func (s *StyleConfig) UnmarshalYAML(value *yaml.Node) error {
	raw := styleYAML{
		Color:         ColorToHex(s.Color),
		Alpha:         float64(s.Color.A) / 255,
		BorderWidth:   s.BorderWidth,
		BorderPadding: s.BorderPadding,
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	c, err := ParseColor(raw.Color, raw.Alpha)
	if err != nil {
		return err
	}

	s.Color = c
	s.BorderWidth = raw.BorderWidth
	s.BorderPadding = raw.BorderPadding
	return nil
}

// ParseColor 解析 "#rrggbb" 与 0~1 的透明度
func ParseColor(hex string, alpha float64) (color.NRGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return color.NRGBA{}, fmt.Errorf("%w: alpha %v out of [0,1]", ErrInvalidColor, alpha)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}, nil
}

// ColorToHex 输出 "#rrggbb"（不含透明度）
func ColorToHex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ProgressBarConfig 进度条完整配置
type ProgressBarConfig struct {
	// Value 初始进度（绘制时钳制到 [0,1]）
	Value  float64      `yaml:"value"`
	Anchor AnchorConfig `yaml:"anchor"`
	Style  StyleConfig  `yaml:"style"`
}

// 默认值
const (
	DefaultProgressValue       = 0.3
	DefaultProgressMargin      = 0.05
	DefaultProgressWidth       = 0.1
	DefaultProgressHeight      = 0.03
	DefaultProgressBorderWidth = 2.0
	DefaultProgressPadding     = 2.0
)

// DefaultProgressBarColor 默认颜色（青色）
var DefaultProgressBarColor = color.NRGBA{R: 0, G: 255, B: 255, A: 255}

// DefaultProgressBarConfig 返回默认配置：右上角，青色，2 像素边框
func DefaultProgressBarConfig() ProgressBarConfig {
	return ProgressBarConfig{
		Value: DefaultProgressValue,
		Anchor: AnchorConfig{
			Align:  AlignTopRight,
			Top:    DefaultProgressMargin,
			Left:   DefaultProgressMargin,
			Bottom: DefaultProgressMargin,
			Right:  DefaultProgressMargin,
			Width:  DefaultProgressWidth,
			Height: DefaultProgressHeight,
		},
		Style: StyleConfig{
			Color:         DefaultProgressBarColor,
			BorderWidth:   DefaultProgressBorderWidth,
			BorderPadding: DefaultProgressPadding,
		},
	}
}

// ParseProgressBarConfig 从 YAML 数据解析进度条配置
//
// 缺失的字段使用 DefaultProgressBarConfig 中的值。
//
// 参数:
//   - data: YAML 内容（可来自嵌入文件）
//
// 返回:
//   - *ProgressBarConfig: 解析后的配置
//   - error: 解析或验证失败时返回错误
func ParseProgressBarConfig(data []byte) (*ProgressBarConfig, error) {
	cfg := DefaultProgressBarConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse progress bar config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid progress bar config: %w", err)
	}

	return &cfg, nil
}

// LoadProgressBarConfig 从文件加载进度条配置
//
// 参数:
//   - path: 配置文件路径（如 "data/progress_bar.yaml"）
func LoadProgressBarConfig(path string) (*ProgressBarConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read progress bar config: %w", err)
	}
	return ParseProgressBarConfig(data)
}

// Validate 验证配置有效性
//
// 只检查边框参数不为负；锚点比例故意不做范围检查。
func (c *ProgressBarConfig) Validate() error {
	if c.Style.BorderWidth < 0 {
		return fmt.Errorf("borderWidth must be >= 0, got %.1f", c.Style.BorderWidth)
	}
	if c.Style.BorderPadding < 0 {
		return fmt.Errorf("borderPadding must be >= 0, got %.1f", c.Style.BorderPadding)
	}
	if c.Anchor.Align < 0 || int(c.Anchor.Align) >= len(alignNames) {
		return fmt.Errorf("%w: %d", ErrUnknownAlign, int(c.Anchor.Align))
	}
	return nil
}
