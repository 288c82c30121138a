package xlog

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// 全局 Logger 状态。
var (
	globalMu   sync.Mutex
	globalOnce atomic.Bool
	global     atomic.Pointer[loggerBox]
)

// loggerBox 包装接口值以便原子存取。
type loggerBox struct {
	l LoggerWithLevel
}

// Default 返回全局 Logger。
// 惰性初始化：首次调用时创建 stderr、Info 级别、text 格式的 Logger。
func Default() LoggerWithLevel {
	if box := global.Load(); box != nil {
		return box.l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if box := global.Load(); box != nil {
		return box.l
	}
	l, _, err := New().Build()
	if err != nil {
		// 默认配置不会失败，此分支仅为防御
		panic("xlog: default logger build failed: " + err.Error())
	}
	global.Store(&loggerBox{l: l})
	globalOnce.Store(true)
	return l
}

// SetDefault 替换全局 Logger。
// nil 会被忽略。
func SetDefault(l LoggerWithLevel) {
	if l == nil {
		return
	}
	global.Store(&loggerBox{l: l})
}

// ResetDefault 重置为未初始化状态。
// 仅用于测试。
func ResetDefault() {
	global.Store(nil)
}

// Debug 使用全局 Logger 记录 Debug 日志。
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Debug(ctx, msg, attrs...)
}

// Info 使用全局 Logger 记录 Info 日志。
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Info(ctx, msg, attrs...)
}

// Warn 使用全局 Logger 记录 Warn 日志。
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Warn(ctx, msg, attrs...)
}

// Error 使用全局 Logger 记录 Error 日志。
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Error(ctx, msg, attrs...)
}
