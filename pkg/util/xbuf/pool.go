package xbuf

import "sync"

// DefaultMaxFrameSize 默认的可池化缓冲区容量上限。
// 取标准以太网帧上限（1500 字节载荷 + 18 字节头尾 + 4 字节 VLAN 标签），
// 向上取整到 2KiB。
const DefaultMaxFrameSize = 2048

// Pool 是帧缓冲区池。
// 零值不可用，使用 [New] 创建。
type Pool struct {
	max int
	p   sync.Pool
}

// New 创建缓冲区池。
// maxFrameSize 是可池化的缓冲区容量上限，小于等于 0 时取 [DefaultMaxFrameSize]。
func New(maxFrameSize int) *Pool {
	if maxFrameSize <= 0 {
		maxFrameSize = DefaultMaxFrameSize
	}
	pl := &Pool{max: maxFrameSize}
	pl.p.New = func() any {
		buf := make([]byte, 0, maxFrameSize)
		return &buf
	}
	return pl
}

// Get 返回一个长度为 size 的缓冲区。
// size 超过池容量上限时直接分配，该缓冲区 Put 时会被丢弃。
// 返回内容未清零。
func (pl *Pool) Get(size int) []byte {
	if size > pl.max {
		return make([]byte, size)
	}
	bp := pl.p.Get().(*[]byte)
	return (*bp)[:size]
}

// Put 归还缓冲区。
// nil 或容量与池不匹配的缓冲区被直接丢弃。
// 只回收容量恰好等于池上限的缓冲区，保证后续 Get 的切片操作永不越界。
func (pl *Pool) Put(buf []byte) {
	if buf == nil || cap(buf) != pl.max {
		return
	}
	b := buf[:0]
	pl.p.Put(&b)
}

// MaxFrameSize 返回池的容量上限。
func (pl *Pool) MaxFrameSize() int {
	return pl.max
}
