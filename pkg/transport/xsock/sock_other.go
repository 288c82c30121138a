//go:build !linux

package xsock

// PacketSocket 在非 Linux 平台上不可用。
type PacketSocket struct{}

// New 在非 Linux 平台上总是返回 [ErrUnsupportedPlatform]。
func New() (*PacketSocket, error) {
	return nil, ErrUnsupportedPlatform
}
