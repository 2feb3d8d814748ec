//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// 仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.progressbar -o build/android/progressbar.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/ProgressBar.xcframework -v ./mobile
//
// 移动端不读取配置文件，直接使用默认进度条配置。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/progressbar/pkg/app"
)

func init() {
	cfg := app.Config{
		Verbose:      true,
		TaskDuration: 5,
		StorageName:  "progressbar",
	}

	barApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(barApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
