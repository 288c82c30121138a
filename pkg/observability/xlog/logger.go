package xlog

import (
	"context"
	"log/slog"
)

// xlogger 是 Logger 接口的 slog 实现。
// 派生实例共享同一个 levelVar，动态级别变更对整棵派生树生效。
type xlogger struct {
	sl       *slog.Logger
	levelVar *slog.LevelVar
}

// 编译期接口检查。
var (
	_ Logger          = (*xlogger)(nil)
	_ LoggerWithLevel = (*xlogger)(nil)
)

func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.sl.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.sl.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.sl.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.sl.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return &xlogger{sl: l.sl.With(args...), levelVar: l.levelVar}
}

func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(level.slogLevel())
}

func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}

func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	return l.sl.Enabled(ctx, level.slogLevel())
}
