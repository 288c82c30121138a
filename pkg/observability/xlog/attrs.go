package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 Key 常量。
// 定义日志中常用的标准字段名，保持一致性。
const (
	// KeyError 错误字段的标准 key
	KeyError = "error"

	// KeyDuration 耗时字段的标准 key
	KeyDuration = "duration"

	// KeyCount 计数字段的标准 key
	KeyCount = "count"

	// KeyComponent 组件名称字段的标准 key
	KeyComponent = "component"

	// KeyOperation 操作名称字段的标准 key
	KeyOperation = "operation"

	// KeyInterface 网络接口名称字段的标准 key
	KeyInterface = "interface"

	// KeyAddress 链路层地址字段的标准 key
	KeyAddress = "address"
)

// Err 创建错误属性。
// 这是记录错误的标准方式，使用统一的 key "error"。
// 如果 err 为 nil，返回空属性（会被忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出人类可读格式（如 "5s"、"1m30s"）。
// 如需机器解析的数值格式，使用 slog.Int64("duration_ms", d.Milliseconds())。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Count 创建计数属性。
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Component 创建组件名称属性。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名称属性。
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Interface 创建网络接口名称属性。
func Interface(name string) slog.Attr {
	return slog.String(KeyInterface, name)
}

// Address 创建链路层地址属性。
// 参数用 fmt.Stringer 约束，xmac.Addr 等地址类型可直接传入。
func Address(addr interface{ String() string }) slog.Attr {
	if addr == nil {
		return slog.Attr{}
	}
	return slog.String(KeyAddress, addr.String())
}
