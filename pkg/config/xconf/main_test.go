package xconf

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain 检测 goroutine 泄漏，确保监视器停止后不残留后台协程。
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
