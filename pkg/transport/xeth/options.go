package xeth

import (
	"github.com/omeyang/xpubsub/pkg/observability/xlog"
	"github.com/omeyang/xpubsub/pkg/util/xbuf"
)

// options 通道可选配置。
type options struct {
	logger xlog.Logger
	pool   *xbuf.Pool
}

// Option 配置通道的可选项。
type Option func(*options)

// defaultOptions 返回默认配置：全局日志、共享帧缓冲池。
func defaultOptions() *options {
	return &options{
		logger: xlog.Default(),
		pool:   sharedPool,
	}
}

// sharedPool 由未显式指定缓冲池的通道共享。
var sharedPool = xbuf.New(xbuf.DefaultMaxFrameSize)

// WithLogger 注入日志记录器。
// nil 会被忽略，保持默认值。
func WithLogger(l xlog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFramePool 注入帧缓冲池。
// 多个通道可共享同一个池。nil 会被忽略，保持默认值。
func WithFramePool(p *xbuf.Pool) Option {
	return func(o *options) {
		if p != nil {
			o.pool = p
		}
	}
}
