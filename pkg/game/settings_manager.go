package game

import (
	"fmt"
	"log"

	"github.com/decker502/progressbar/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// BarSettings 运行时对进度条的修改（对齐方式、颜色等）
// 保存后下次启动覆盖配置文件中的锚点和样式
type BarSettings struct {
	Anchor config.AnchorConfig `yaml:"anchor"`
	Style  config.StyleConfig  `yaml:"style"`

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultBarSettings 以配置文件内容作为默认设置
func DefaultBarSettings(cfg config.ProgressBarConfig) *BarSettings {
	return &BarSettings{
		Anchor: cfg.Anchor,
		Style:  cfg.Style,
	}
}

// SettingsManager 设置管理器
// 负责进度条设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	defaults     config.ProgressBarConfig
	settings     *BarSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "progress_bar"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - defaults: 无存档时使用的配置
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 目前总是 nil，加载失败只记录日志并使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager, defaults config.ProgressBarConfig) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		defaults:     defaults,
		settings:     DefaultBarSettings(defaults),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或存档不存在，使用默认设置
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultBarSettings(sm.defaults)
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultBarSettings(sm.defaults)
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultBarSettings(sm.defaults)
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 以默认值为底，缺失字段保持默认
	loaded := DefaultBarSettings(sm.defaults)
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultBarSettings(sm.defaults)
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully (align=%s)", loaded.Anchor.Align)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// Reset 恢复默认设置（仅内存，需调用 Save 持久化）
func (sm *SettingsManager) Reset() {
	sm.settings = DefaultBarSettings(sm.defaults)
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *BarSettings {
	return sm.settings
}

// Capture 记录进度条当前的锚点和样式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) Capture(anchor config.AnchorConfig, style config.StyleConfig) {
	sm.settings.Anchor = anchor
	sm.settings.Style = style
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}
