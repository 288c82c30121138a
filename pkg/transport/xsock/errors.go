package xsock

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrUnsupportedPlatform 表示当前平台不支持 AF_PACKET 套接字。
	ErrUnsupportedPlatform = errors.New("xsock: AF_PACKET requires linux")

	// ErrSocketClosed 表示套接字已关闭。
	ErrSocketClosed = errors.New("xsock: socket closed")
)
