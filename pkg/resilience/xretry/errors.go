package xretry

import "errors"

// 参数校验错误。
var (
	// ErrNilContext 表示传入了 nil 上下文。
	ErrNilContext = errors.New("xretry: nil context")

	// ErrNilFunc 表示传入了 nil 执行函数。
	ErrNilFunc = errors.New("xretry: nil function")

	// ErrNilChannel 表示 Sender 未绑定通道。
	ErrNilChannel = errors.New("xretry: nil channel")
)

// RetryableError 可重试错误接口。
// 实现此接口的错误会被自动识别为可重试或不可重试。
type RetryableError interface {
	error
	Retryable() bool
}

// PermanentError 永久性错误（不应重试）。
type PermanentError struct {
	Err error
}

// NewPermanentError 创建永久性错误。
func NewPermanentError(err error) *PermanentError {
	return &PermanentError{Err: err}
}

func (e *PermanentError) Error() string {
	if e.Err == nil {
		return "permanent error"
	}
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

func (e *PermanentError) Retryable() bool {
	return false
}

// IsRetryable 检查错误是否可重试。
// 规则：
//   - nil 错误：不需要重试（视为成功）
//   - 实现 RetryableError 接口：根据 Retryable() 返回值判断
//   - 其他错误：默认视为可重试
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var re RetryableError
	if errors.As(err, &re) {
		return re.Retryable()
	}

	return true
}
