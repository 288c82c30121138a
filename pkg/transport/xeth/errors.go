package xeth

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidConfiguration 表示连接配置无效（地址对象缺失、URL 无法解析等）。
	ErrInvalidConfiguration = errors.New("xeth: invalid configuration")

	// ErrInterfaceResolution 表示指定的网络接口不存在或无法解析。
	ErrInterfaceResolution = errors.New("xeth: interface resolution failed")

	// ErrInvalidState 表示操作在当前通道状态下不合法。
	ErrInvalidState = errors.New("xeth: invalid channel state")

	// ErrTransmit 表示底层帧发送失败。
	// 发送语义为 at-most-once，不自动重试，通道状态保持不变。
	ErrTransmit = errors.New("xeth: transmit failed")

	// ErrInternal 表示多播组 join/leave 等内部操作失败。
	ErrInternal = errors.New("xeth: internal error")

	// ErrReceiveUnsupported 表示本传输变体未实现接收路径。
	// 这是显式的能力缺口，区别于"暂无数据"。
	ErrReceiveUnsupported = errors.New("xeth: receive not supported by this transport")

	// ErrNilPacketIO 表示 Open 时未提供 PacketIO 能力。
	ErrNilPacketIO = errors.New("xeth: nil packet I/O")
)
