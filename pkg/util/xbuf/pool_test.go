package xbuf

import (
	"sync"
	"testing"
)

func TestGetLength(t *testing.T) {
	pl := New(2048)

	tests := []struct {
		name string
		size int
	}{
		{"zero", 0},
		{"small", 46},
		{"mtu", 1500},
		{"at_limit", 2048},
		{"over_limit", 9000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := pl.Get(tt.size)
			if len(buf) != tt.size {
				t.Errorf("Get(%d) len = %d, want %d", tt.size, len(buf), tt.size)
			}
			pl.Put(buf)
		})
	}
}

func TestReuse(t *testing.T) {
	pl := New(128)
	buf := pl.Get(64)
	for i := range buf {
		buf[i] = 0xaa
	}
	pl.Put(buf)

	// 复用后长度必须匹配新请求
	again := pl.Get(32)
	if len(again) != 32 {
		t.Errorf("Get(32) after Put len = %d, want 32", len(again))
	}
}

func TestPutOversized(t *testing.T) {
	pl := New(64)
	big := pl.Get(1024) // 超限，直接分配
	if cap(big) < 1024 {
		t.Fatalf("Get(1024) cap = %d, want >= 1024", cap(big))
	}
	// 超限缓冲区归还时被丢弃，不应 panic
	pl.Put(big)
	pl.Put(nil)
}

func TestDefaultMax(t *testing.T) {
	pl := New(0)
	if pl.MaxFrameSize() != DefaultMaxFrameSize {
		t.Errorf("MaxFrameSize() = %d, want %d", pl.MaxFrameSize(), DefaultMaxFrameSize)
	}
}

func TestConcurrent(t *testing.T) {
	pl := New(256)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				buf := pl.Get(128)
				buf[0] = 1
				pl.Put(buf)
			}
		}()
	}
	wg.Wait()
}
