package xeth

import "github.com/omeyang/xpubsub/pkg/util/xmac"

// Interface 是已解析的网络接口句柄。
type Interface struct {
	// Index 内核接口索引。
	Index int

	// Name 接口名（如 "eth0"）。
	Name string

	// HardwareAddr 接口的硬件地址，作为出帧的源地址。
	HardwareAddr xmac.Addr

	// MTU 接口 MTU，0 表示未知。
	MTU int
}

// PacketIO 是通道依赖的链路层收发能力。
//
// 通道自身不包含网络栈：接口解析、帧发送和多播组管理全部
// 委托给注入的 PacketIO 实现。生产实现见 xsock 包（AF_PACKET），
// 测试实现见 [MemPacketIO]。
//
// 实现要求：
//   - Transmit 构造完整的以太网头（dst/src/etherType）并在 frame
//     之前发出，frame 是可选 VLAN 标签加载荷；调用返回后实现不得
//     继续引用 frame（缓冲区随即归还池）
//   - 不同 Interface 上的并发调用必须安全；同一通道的调用由
//     通道的调用方串行化
type PacketIO interface {
	// ResolveInterface 按名称解析本地网络接口。
	// 接口不存在时返回错误。
	ResolveInterface(name string) (Interface, error)

	// Transmit 从 ifc 发送一帧：目标 dst、源 src、外层 EtherType etherType。
	// 阻塞到底层发送原语完成，无内部排队。
	Transmit(ifc Interface, frame []byte, src, dst xmac.Addr, etherType uint16) error

	// JoinGroup 在 ifc 上加入链路层多播组。
	JoinGroup(ifc Interface, group xmac.Addr) error

	// LeaveGroup 在 ifc 上离开链路层多播组。
	LeaveGroup(ifc Interface, group xmac.Addr) error

	// Close 释放底层资源（套接字等）。
	Close() error
}
