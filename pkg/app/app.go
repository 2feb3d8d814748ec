// Package app 提供进度条演示程序的核心包装器
//
// App 实现 ebiten.Game 接口：每个 tick 推进模拟任务并把进度写入进度条，
// 每帧把真实屏幕尺寸传给进度条绘制。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/progressbar/pkg/config"
	"github.com/decker502/progressbar/pkg/game"
	"github.com/decker502/progressbar/pkg/modules"
	"github.com/decker502/progressbar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 默认窗口尺寸
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// BarPalette C 键循环切换的颜色
var BarPalette = []color.NRGBA{
	config.DefaultProgressBarColor,
	{R: 255, G: 165, B: 0, A: 255},   // 橙
	{R: 255, G: 0, B: 255, A: 255},   // 品红
	{R: 50, G: 205, B: 50, A: 255},   // 绿
	{R: 255, G: 255, B: 255, A: 160}, // 半透明白
}

// backgroundColor 演示背景
var backgroundColor = color.RGBA{R: 24, G: 24, B: 32, A: 255}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 在屏幕左上角显示调试信息
	Debug bool
	// ConfigPath 进度条配置文件路径，为空时使用 ConfigData
	ConfigPath string
	// ConfigData 内置的进度条配置（YAML），为空时使用默认配置
	ConfigData []byte
	// TaskDuration 模拟任务从 0 到 1 的时间（秒）
	TaskDuration float64
	// StorageName gdata 存储名，为空时不持久化设置
	StorageName string
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	bar      *modules.ProgressBarModule
	task     *game.TaskProgress
	settings *game.SettingsManager

	debug        bool
	paletteIndex int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	barConfig, err := loadBarConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("进度条配置加载失败: %w", err)
	}
	log.Printf("[Config] Progress bar: align=%s value=%.2f", barConfig.Anchor.Align, barConfig.Value)

	// 打开 gdata 存储（失败时降级为仅内存设置）
	var gdataManager *gdata.Manager
	if cfg.StorageName != "" {
		if err := utils.EnsureStorageDir(cfg.StorageName); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
		gdataManager, err = gdata.Open(gdata.Config{AppName: cfg.StorageName})
		if err != nil {
			log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
			gdataManager = nil
		}
	}

	settingsManager, err := game.NewSettingsManager(gdataManager, *barConfig)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	bar := modules.NewProgressBarModule(*barConfig)
	applySettings(bar, settingsManager.GetSettings())
	bar.Init()

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	a := &App{
		bar:      bar,
		task:     game.NewTaskProgress(cfg.TaskDuration),
		settings: settingsManager,
		debug:    cfg.Debug,
	}
	a.paletteIndex = paletteIndexOf(bar.Style.Color)

	log.Printf("[App] Initialized")
	return a, nil
}

// loadBarConfig 按优先级加载：文件 > 内置数据 > 默认值
func loadBarConfig(cfg Config) (*config.ProgressBarConfig, error) {
	if cfg.ConfigPath != "" {
		log.Printf("[Config] 加载进度条配置: %s", cfg.ConfigPath)
		return config.LoadProgressBarConfig(cfg.ConfigPath)
	}
	if len(cfg.ConfigData) > 0 {
		return config.ParseProgressBarConfig(cfg.ConfigData)
	}
	defaults := config.DefaultProgressBarConfig()
	return &defaults, nil
}

// applySettings 用已保存的设置覆盖进度条的锚点和样式
func applySettings(bar *modules.ProgressBarModule, settings *game.BarSettings) {
	bar.Anchor = settings.Anchor
	bar.Style = settings.Style
}

// paletteIndexOf 颜色在调色板中的位置，不在调色板中返回 -1
func paletteIndexOf(c color.NRGBA) int {
	for i, p := range BarPalette {
		if p == c {
			return i
		}
	}
	return -1
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(DefaultWindowWidth, DefaultWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	a.handleInput()

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.Step(deltaTime)
	return nil
}

// Step 推进模拟任务并把进度写入进度条
func (a *App) Step(deltaTime float64) {
	a.task.Update(deltaTime)
	a.bar.Value = a.task.Fraction()
}

// handleInput 处理演示快捷键
func (a *App) handleInput() {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.ToggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		a.NextAlign()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.NextColor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		paused := a.task.TogglePause()
		log.Printf("[App] Task paused=%v", paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.ResetSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := a.SaveSettings(); err != nil {
			log.Printf("[App] ERROR: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.debug = !a.debug
	}

	// 移动端没有键盘：轻触切换对齐方式
	if utils.IsMobile() && len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		a.NextAlign()
	}
}

// ToggleFullscreen 切换全屏
func (a *App) ToggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settings.SetFullscreen(true)
}

// NextAlign 切换到下一个对齐方式
func (a *App) NextAlign() {
	a.bar.Anchor.Align = a.bar.Anchor.Align.Next()
	a.settings.Capture(a.bar.Anchor, a.bar.Style)
	log.Printf("[App] Align -> %s", a.bar.Anchor.Align)
}

// NextColor 切换到调色板中的下一个颜色
// 进度条在下一次 Draw 时重建纯色图片
func (a *App) NextColor() {
	a.paletteIndex = (a.paletteIndex + 1) % len(BarPalette)
	a.bar.Style.Color = BarPalette[a.paletteIndex]
	a.settings.Capture(a.bar.Anchor, a.bar.Style)
	log.Printf("[App] Color -> %s", config.ColorToHex(a.bar.Style.Color))
}

// ResetSettings 恢复配置文件中的锚点和样式
func (a *App) ResetSettings() {
	a.settings.Reset()
	applySettings(a.bar, a.settings.GetSettings())
	a.paletteIndex = paletteIndexOf(a.bar.Style.Color)
	log.Printf("[App] Settings reset")
}

// SaveSettings 保存当前进度条设置
func (a *App) SaveSettings() error {
	a.settings.Capture(a.bar.Anchor, a.bar.Style)
	if err := a.settings.Save(); err != nil {
		return fmt.Errorf("保存设置失败: %w", err)
	}
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	bounds := screen.Bounds()
	a.bar.Draw(screen, float64(bounds.Dx()), float64(bounds.Dy()))

	if a.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"value=%.2f align=%s color=%s paused=%v\n[A] align [C] color [Space] pause [S] save [R] reset [F11] fullscreen",
			a.bar.Value, a.bar.Anchor.Align, config.ColorToHex(a.bar.Style.Color), a.task.IsPaused(),
		))
	}
}

// Layout 逻辑屏幕尺寸与窗口一致，进度条按真实像素锚定
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Close 保存设置并释放进度条资源
// 在 ebiten.RunGame 返回后调用
func (a *App) Close() error {
	err := a.SaveSettings()
	a.bar.Dispose()
	return err
}

// ProgressBar 返回进度条模块
func (a *App) ProgressBar() *modules.ProgressBarModule {
	return a.bar
}

// Task 返回模拟任务
func (a *App) Task() *game.TaskProgress {
	return a.task
}

// IsDebug 是否显示调试信息
func (a *App) IsDebug() bool {
	return a.debug
}
