package xeth

import (
	"fmt"
	"sync"

	"github.com/omeyang/xpubsub/pkg/util/xmac"
)

// SentFrame 记录一次 Transmit 调用。
type SentFrame struct {
	Interface Interface
	Frame     []byte // Transmit 时的副本
	Src       xmac.Addr
	Dst       xmac.Addr
	EtherType uint16
}

// MemPacketIO 是 [PacketIO] 的内存实现，记录所有操作供断言。
// 用于单元测试和无真实网卡的环境，并发安全。
type MemPacketIO struct {
	mu         sync.Mutex
	interfaces map[string]Interface
	sent       []SentFrame
	groups     map[xmac.Addr]int // 组地址 → join 计数
	closed     bool

	// TransmitErr 非 nil 时，Transmit 返回该错误（故障注入）。
	TransmitErr error

	// GroupErr 非 nil 时，JoinGroup/LeaveGroup 返回该错误（故障注入）。
	GroupErr error
}

// 编译期接口检查。
var _ PacketIO = (*MemPacketIO)(nil)

// NewMemPacketIO 创建内存 PacketIO，预注册给定接口。
func NewMemPacketIO(ifcs ...Interface) *MemPacketIO {
	m := &MemPacketIO{
		interfaces: make(map[string]Interface, len(ifcs)),
		groups:     make(map[xmac.Addr]int),
	}
	for _, ifc := range ifcs {
		m.interfaces[ifc.Name] = ifc
	}
	return m
}

// ResolveInterface 查找预注册接口。
func (m *MemPacketIO) ResolveInterface(name string) (Interface, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ifc, ok := m.interfaces[name]
	if !ok {
		return Interface{}, fmt.Errorf("memio: no such interface %q", name)
	}
	return ifc, nil
}

// Transmit 记录发送的帧（内容为副本，不引用原缓冲区）。
func (m *MemPacketIO) Transmit(ifc Interface, frame []byte, src, dst xmac.Addr, etherType uint16) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TransmitErr != nil {
		return m.TransmitErr
	}
	if m.closed {
		return fmt.Errorf("memio: closed")
	}
	m.sent = append(m.sent, SentFrame{
		Interface: ifc,
		Frame:     append([]byte(nil), frame...),
		Src:       src,
		Dst:       dst,
		EtherType: etherType,
	})
	return nil
}

// JoinGroup 增加组地址的 join 计数。
func (m *MemPacketIO) JoinGroup(_ Interface, group xmac.Addr) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GroupErr != nil {
		return m.GroupErr
	}
	m.groups[group]++
	return nil
}

// LeaveGroup 减少组地址的 join 计数。
// 未加入过的组返回错误。
func (m *MemPacketIO) LeaveGroup(_ Interface, group xmac.Addr) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GroupErr != nil {
		return m.GroupErr
	}
	if m.groups[group] == 0 {
		return fmt.Errorf("memio: not a member of %s", group)
	}
	m.groups[group]--
	return nil
}

// Close 标记关闭，之后 Transmit 失败。
func (m *MemPacketIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Sent 返回已记录的发送帧快照。
func (m *MemPacketIO) Sent() []SentFrame {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentFrame, len(m.sent))
	copy(out, m.sent)
	return out
}

// GroupCount 返回组地址当前的 join 计数。
func (m *MemPacketIO) GroupCount(group xmac.Addr) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.groups[group]
}
