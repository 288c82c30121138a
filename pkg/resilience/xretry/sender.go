package xretry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/omeyang/xpubsub/pkg/observability/xlog"
	"github.com/omeyang/xpubsub/pkg/transport/xeth"
)

// SendChannel 是 Sender 依赖的最小通道能力。
// xeth.Channel 及其实现均满足此接口。
type SendChannel interface {
	Send(payload []byte) error
}

// Sender 为通道 Send 提供调用方侧重试。
//
// 通道本身的发送语义保持 at-most-once；Sender 在其上按配置的
// 次数与退避重复调用。状态类错误（通道状态非法、配置无效、
// 能力缺失）被视为永久错误，立即终止。
type Sender struct {
	ch       SendChannel
	logger   xlog.Logger
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
}

// SenderOption Sender 配置选项。
type SenderOption func(*Sender)

// WithAttempts 设置总尝试次数（包含首次），默认 3。
func WithAttempts(n uint) SenderOption {
	return func(s *Sender) {
		if n > 0 {
			s.attempts = n
		}
	}
}

// WithDelay 设置初始重试间隔，默认 10ms。
func WithDelay(d time.Duration) SenderOption {
	return func(s *Sender) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithMaxSendDelay 设置重试间隔上限，默认 500ms。
func WithMaxSendDelay(d time.Duration) SenderOption {
	return func(s *Sender) {
		if d > 0 {
			s.maxDelay = d
		}
	}
}

// WithSendLogger 设置日志器，默认使用包级默认日志器。
func WithSendLogger(l xlog.Logger) SenderOption {
	return func(s *Sender) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSender 创建发送重试执行器。
func NewSender(ch SendChannel, opts ...SenderOption) (*Sender, error) {
	if ch == nil {
		return nil, ErrNilChannel
	}
	s := &Sender{
		ch:       ch,
		logger:   xlog.Default(),
		attempts: 3,
		delay:    10 * time.Millisecond,
		maxDelay: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send 发送载荷，瞬时失败时按退避重试。
// ctx 仅用于取消重试等待，不传递给通道。
func (s *Sender) Send(ctx context.Context, payload []byte) error {
	return Do(ctx, func() error {
		err := s.ch.Send(payload)
		if err == nil {
			return nil
		}
		if isPermanentSendError(err) {
			return Unrecoverable(err)
		}
		return err
	},
		Attempts(s.attempts),
		Delay(s.delay),
		MaxDelay(s.maxDelay),
		LastErrorOnly(true),
		OnRetry(func(n uint, err error) {
			s.logger.Warn(ctx, "send retry",
				slog.Uint64("attempt", uint64(n)+1),
				xlog.Err(err),
			)
		}),
	)
}

// isPermanentSendError 判断通道错误是否为永久错误。
// 只有传输失败值得重试；状态与配置问题重试也不会成功。
func isPermanentSendError(err error) bool {
	return errors.Is(err, xeth.ErrInvalidState) ||
		errors.Is(err, xeth.ErrInvalidConfiguration) ||
		errors.Is(err, xeth.ErrReceiveUnsupported)
}
