package app

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/progressbar/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	cfg.Verbose = true
	a, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return a
}

// TestNewAppDefaults 无配置时使用默认进度条
func TestNewAppDefaults(t *testing.T) {
	a := newTestApp(t, Config{})

	bar := a.ProgressBar()
	if bar.Anchor.Align != config.AlignTopRight {
		t.Errorf("Align: got %v, want TopRight", bar.Anchor.Align)
	}
	if bar.FillImage() == nil {
		t.Error("FillImage should be built by Init")
	}
	if a.paletteIndex != 0 {
		t.Errorf("paletteIndex: got %d, want 0", a.paletteIndex)
	}
}

// TestNewAppConfigData 使用内置 YAML
func TestNewAppConfigData(t *testing.T) {
	a := newTestApp(t, Config{ConfigData: []byte("anchor:\n  align: BottomLeft\n")})

	if got := a.ProgressBar().Anchor.Align; got != config.AlignBottomLeft {
		t.Errorf("Align: got %v, want BottomLeft", got)
	}
}

// TestNewAppConfigPath 配置文件优先于内置数据
func TestNewAppConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.yaml")
	if err := os.WriteFile(path, []byte("anchor:\n  align: Right\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	a := newTestApp(t, Config{
		ConfigPath: path,
		ConfigData: []byte("anchor:\n  align: Bottom\n"),
	})

	if got := a.ProgressBar().Anchor.Align; got != config.AlignRight {
		t.Errorf("Align: got %v, want Right", got)
	}
}

// TestNewAppInvalidConfig 配置错误时返回错误
func TestNewAppInvalidConfig(t *testing.T) {
	_, err := NewApp(Config{Verbose: true, ConfigData: []byte("style:\n  color: nope\n")})
	if err == nil {
		t.Fatal("expected error for invalid config, got nil")
	}

	_, err = NewApp(Config{Verbose: true, ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

// TestAppStepWritesValue 模拟任务进度写入进度条（可越过 1）
func TestAppStepWritesValue(t *testing.T) {
	a := newTestApp(t, Config{TaskDuration: 2})

	a.Step(1)
	if got := a.ProgressBar().Value; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Value after 1s: got %v, want 0.5", got)
	}

	a.Step(1.4)
	if got := a.ProgressBar().Value; got <= 1 {
		t.Errorf("Value should overshoot 1, got %v", got)
	}
}

// TestAppNextAlignAndColor 快捷键操作修改进度条并记录到设置
func TestAppNextAlignAndColor(t *testing.T) {
	a := newTestApp(t, Config{})

	a.NextAlign()
	if got := a.ProgressBar().Anchor.Align; got != config.AlignRight {
		t.Errorf("Align: got %v, want Right", got)
	}
	if got := a.settings.GetSettings().Anchor.Align; got != config.AlignRight {
		t.Errorf("captured Align: got %v, want Right", got)
	}

	a.NextColor()
	if got := a.ProgressBar().Style.Color; got != BarPalette[1] {
		t.Errorf("Color: got %v, want %v", got, BarPalette[1])
	}

	// 颜色在下一次绘制时生效
	screen := ebiten.NewImage(DefaultWindowWidth, DefaultWindowHeight)
	before := a.ProgressBar().FillImage()
	a.Draw(screen)
	if a.ProgressBar().FillImage() == before {
		t.Error("fill image should be rebuilt after color change")
	}

	for i := 0; i < len(BarPalette)-1; i++ {
		a.NextColor()
	}
	if got := a.ProgressBar().Style.Color; got != BarPalette[0] {
		t.Errorf("Color after full cycle: got %v, want %v", got, BarPalette[0])
	}
}

// TestAppResetSettings 恢复配置文件中的锚点和样式
func TestAppResetSettings(t *testing.T) {
	a := newTestApp(t, Config{})

	a.NextAlign()
	a.NextColor()
	a.ResetSettings()

	bar := a.ProgressBar()
	defaults := config.DefaultProgressBarConfig()
	if bar.Anchor != defaults.Anchor || bar.Style != defaults.Style {
		t.Errorf("after reset: got %+v / %+v, want defaults", bar.Anchor, bar.Style)
	}
	if a.paletteIndex != 0 {
		t.Errorf("paletteIndex: got %d, want 0", a.paletteIndex)
	}
}

// TestAppDrawAndClose 绘制与关闭不崩溃
func TestAppDrawAndClose(t *testing.T) {
	a := newTestApp(t, Config{Debug: true})
	screen := ebiten.NewImage(DefaultWindowWidth, DefaultWindowHeight)

	a.Step(0.5)
	a.Draw(screen)

	if err := a.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if a.ProgressBar().FillImage() != nil {
		t.Error("FillImage should be released by Close")
	}
}

// TestAppLayoutFollowsWindow 逻辑尺寸跟随窗口
func TestAppLayoutFollowsWindow(t *testing.T) {
	a := newTestApp(t, Config{})
	w, h := a.Layout(1280, 720)
	if w != 1280 || h != 720 {
		t.Errorf("Layout: got %dx%d, want 1280x720", w, h)
	}
}

// TestPaletteIndexOf 不在调色板中的颜色返回 -1
func TestPaletteIndexOf(t *testing.T) {
	if got := paletteIndexOf(BarPalette[2]); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := paletteIndexOf(config.DefaultProgressBarColor); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	custom := BarPalette[0]
	custom.A = 1
	if got := paletteIndexOf(custom); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}
