package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Builder 日志配置构建器。
//
// first-error-wins：遇到第一个配置错误后，后续 Set 操作被跳过，
// 错误在 Build 时统一返回。Builder 为一次性使用，Build 后不可复用。
type Builder struct {
	output   io.Writer
	level    Level
	levelVar *slog.LevelVar
	format   string
	rotator  *lumberjack.Logger
	built    bool
	err      error
}

// New 创建配置构建器。
// 默认输出 stderr、Info 级别、text 格式、无轮转。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	return &Builder{
		output:   os.Stderr,
		level:    LevelInfo,
		levelVar: levelVar,
		format:   "text",
	}
}

// SetLevel 设置日志级别。
func (b *Builder) SetLevel(level Level) *Builder {
	if b.err != nil {
		return b
	}
	b.level = level
	return b
}

// SetFormat 设置输出格式，接受 "text" 或 "json"。
func (b *Builder) SetFormat(format string) *Builder {
	if b.err != nil {
		return b
	}
	f := strings.ToLower(format)
	if f != "text" && f != "json" {
		b.err = fmt.Errorf("xlog: unknown format %q", format)
		return b
	}
	b.format = f
	return b
}

// SetOutput 设置输出目标。
// nil 输出会在 Build 时报错。与 SetRotation 互斥，后设置者生效。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if b.err != nil {
		return b
	}
	if w == nil {
		b.err = fmt.Errorf("xlog: nil output")
		return b
	}
	b.output = w
	b.rotator = nil
	return b
}

// SetRotation 设置基于文件大小的日志轮转。
// maxSizeMB/maxBackups 小于等于 0 时取 lumberjack 默认值。
func (b *Builder) SetRotation(filename string, maxSizeMB, maxBackups int) *Builder {
	if b.err != nil {
		return b
	}
	if filename == "" {
		b.err = fmt.Errorf("xlog: empty rotation filename")
		return b
	}
	b.rotator = &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}
	return b
}

// Build 构建 Logger。
// 返回的 cleanup 函数负责关闭轮转文件句柄，调用方应在进程退出前调用。
func (b *Builder) Build() (LoggerWithLevel, func(), error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	if b.built {
		return nil, nil, fmt.Errorf("xlog: builder already used")
	}
	b.built = true

	out := b.output
	cleanup := func() {}
	if b.rotator != nil {
		out = b.rotator
		r := b.rotator
		cleanup = func() { _ = r.Close() }
	}

	b.levelVar.Set(b.level.slogLevel())
	opts := &slog.HandlerOptions{Level: b.levelVar}

	var handler slog.Handler
	if b.format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &xlogger{sl: slog.New(handler), levelVar: b.levelVar}, cleanup, nil
}
