package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/progressbar/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	debug      = flag.Bool("debug", false, "显示调试信息（运行中按 F3 切换）")
	configPath = flag.String("config", "", "进度条配置文件路径（默认使用内置配置）")
	width      = flag.Int("width", app.DefaultWindowWidth, "窗口宽度")
	height     = flag.Int("height", app.DefaultWindowHeight, "窗口高度")
	duration   = flag.Float64("duration", 5, "模拟任务时长（秒）")
	noSave     = flag.Bool("no-save", false, "不读取也不保存运行时设置")
)

func main() {
	flag.Parse()

	storageName := "progressbar"
	if *noSave {
		storageName = ""
	}

	a, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		Debug:        *debug,
		ConfigPath:   *configPath,
		ConfigData:   defaultConfigData,
		TaskDuration: *duration,
		StorageName:  storageName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Progress Bar")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 启动主循环，直到窗口关闭
	runErr := ebiten.RunGame(a)

	if err := a.Close(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", runErr)
		os.Exit(1)
	}
}
