package xretry

import (
	"context"

	retry "github.com/avast/retry-go/v5"
)

// 设计决策: 以下别名镜像 avast/retry-go/v5 的常用 API 表面，
// 使调用方无需直接依赖第三方包，便于未来替换底层实现。
type (
	// Option 是 retry-go 的配置选项类型
	Option = retry.Option

	// OnRetryFunc 是重试回调函数类型
	// attempt: 当前尝试次数（从 0 开始）
	OnRetryFunc = retry.OnRetryFunc

	// RetryIfFunc 是重试条件判断函数类型
	RetryIfFunc = retry.RetryIfFunc

	// DelayTypeFunc 是延迟类型函数
	DelayTypeFunc = retry.DelayTypeFunc
)

// retry-go 的配置选项函数。
var (
	// Attempts 设置总尝试次数（包含首次尝试），0 表示无限重试。
	Attempts = retry.Attempts

	// Delay 设置重试间隔，默认 100ms。
	Delay = retry.Delay

	// MaxDelay 设置最大重试间隔。
	MaxDelay = retry.MaxDelay

	// MaxJitter 设置最大抖动时间。
	MaxJitter = retry.MaxJitter

	// DelayType 设置延迟类型，默认 CombineDelay(BackOffDelay, RandomDelay)。
	DelayType = retry.DelayType

	// OnRetry 设置重试回调函数。
	OnRetry = retry.OnRetry

	// RetryIf 设置重试条件判断函数。
	RetryIf = retry.RetryIf

	// Context 设置上下文。
	Context = retry.Context

	// LastErrorOnly 只返回最后一个错误。
	LastErrorOnly = retry.LastErrorOnly
)

// retry-go 的延迟类型函数。
var (
	// BackOffDelay 指数退避延迟
	BackOffDelay = retry.BackOffDelay

	// FixedDelay 固定延迟
	FixedDelay = retry.FixedDelay

	// RandomDelay 随机延迟
	RandomDelay = retry.RandomDelay

	// CombineDelay 组合多个延迟类型
	CombineDelay = retry.CombineDelay
)

// retry-go 的错误处理函数。
var (
	// Unrecoverable 将错误标记为不可恢复（不再重试）
	Unrecoverable = retry.Unrecoverable

	// IsRecoverable 检查错误是否可恢复
	IsRecoverable = retry.IsRecoverable
)

// Do 执行带重试的操作。
//
// 这是对 retry-go 的薄包装。默认的重试条件同时检查
// Unrecoverable 标记和 RetryableError 接口；调用方传入的
// RetryIf 选项会覆盖默认条件。
//
// 延迟语义：默认使用 retry-go 的 CombineDelay(BackOffDelay, RandomDelay)，
// 即使设置 Delay(0)，MaxJitter 的默认值仍会引入随机延迟。
// 若需精确的零延迟重试，请同时设置 Delay(0) 和 MaxJitter(0)。
func Do(ctx context.Context, fn func() error, opts ...Option) error {
	if ctx == nil {
		return ErrNilContext
	}
	if fn == nil {
		return ErrNilFunc
	}
	return retry.New(defaultOpts(ctx, opts)...).Do(fn)
}

// DoWithData 执行带重试的操作（有返回值）。
func DoWithData[T any](ctx context.Context, fn func() (T, error), opts ...Option) (T, error) {
	var zero T
	if ctx == nil {
		return zero, ErrNilContext
	}
	if fn == nil {
		return zero, ErrNilFunc
	}
	return retry.NewWithData[T](defaultOpts(ctx, opts)...).Do(fn)
}

// defaultOpts 构建带默认 RetryIf 逻辑的选项列表。
// 用户传入的 opts 追加在后，如果包含 RetryIf 则覆盖默认行为。
func defaultOpts(ctx context.Context, opts []Option) []Option {
	allOpts := make([]Option, 0, len(opts)+2)
	allOpts = append(allOpts, Context(ctx))
	allOpts = append(allOpts, RetryIf(func(err error) bool {
		if !IsRecoverable(err) {
			return false
		}
		return IsRetryable(err)
	}))
	return append(allOpts, opts...)
}
