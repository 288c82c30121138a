//go:build linux

package xsock

import (
	"encoding/binary"
	"fmt"
	"net"

	"golang.org/x/sys/unix"

	"github.com/omeyang/xpubsub/pkg/transport/xeth"
	"github.com/omeyang/xpubsub/pkg/util/xbuf"
	"github.com/omeyang/xpubsub/pkg/util/xmac"
)

// ethHeaderLen 以太网头长度：目标(6) + 源(6) + EtherType(2)。
const ethHeaderLen = 14

// PacketSocket 是 xeth.PacketIO 的 AF_PACKET 实现。
type PacketSocket struct {
	fd     int
	pool   *xbuf.Pool
	closed bool
}

// 编译期接口检查。
var _ xeth.PacketIO = (*PacketSocket)(nil)

// New 创建 AF_PACKET 原始套接字。
// 需要 CAP_NET_RAW 权限；权限不足时返回 EPERM 包装错误。
func New() (*PacketSocket, error) {
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(htons(unix.ETH_P_ALL)))
	if err != nil {
		return nil, fmt.Errorf("xsock: create AF_PACKET socket: %w", err)
	}
	return &PacketSocket{
		fd:   fd,
		pool: xbuf.New(xbuf.DefaultMaxFrameSize),
	}, nil
}

// ResolveInterface 按名称解析网络接口。
func (s *PacketSocket) ResolveInterface(name string) (xeth.Interface, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return xeth.Interface{}, fmt.Errorf("xsock: interface %q: %w", name, err)
	}
	hw, err := xmac.ParseBytes(ifi.HardwareAddr)
	if err != nil {
		return xeth.Interface{}, fmt.Errorf("xsock: interface %q hardware address: %w", name, err)
	}
	return xeth.Interface{
		Index:        ifi.Index,
		Name:         ifi.Name,
		HardwareAddr: hw,
		MTU:          ifi.MTU,
	}, nil
}

// Transmit 在 frame 前补齐以太网头后从 ifc 发出。
func (s *PacketSocket) Transmit(ifc xeth.Interface, frame []byte, src, dst xmac.Addr, etherType uint16) error {
	if s.closed {
		return ErrSocketClosed
	}

	pkt := s.pool.Get(ethHeaderLen + len(frame))
	defer s.pool.Put(pkt)

	dstBytes := dst.Bytes()
	srcBytes := src.Bytes()
	copy(pkt[0:6], dstBytes[:])
	copy(pkt[6:12], srcBytes[:])
	binary.BigEndian.PutUint16(pkt[12:14], etherType)
	copy(pkt[ethHeaderLen:], frame)

	sa := &unix.SockaddrLinklayer{
		Protocol: htons(etherType),
		Ifindex:  ifc.Index,
		Halen:    6,
	}
	copy(sa.Addr[:6], dstBytes[:])

	if err := unix.Sendto(s.fd, pkt, 0, sa); err != nil {
		return fmt.Errorf("xsock: sendto on %s: %w", ifc.Name, err)
	}
	return nil
}

// JoinGroup 在 ifc 上加入链路层多播组。
func (s *PacketSocket) JoinGroup(ifc xeth.Interface, group xmac.Addr) error {
	return s.setMembership(ifc, group, unix.PACKET_ADD_MEMBERSHIP)
}

// LeaveGroup 在 ifc 上离开链路层多播组。
func (s *PacketSocket) LeaveGroup(ifc xeth.Interface, group xmac.Addr) error {
	return s.setMembership(ifc, group, unix.PACKET_DROP_MEMBERSHIP)
}

func (s *PacketSocket) setMembership(ifc xeth.Interface, group xmac.Addr, op int) error {
	if s.closed {
		return ErrSocketClosed
	}
	mreq := unix.PacketMreq{
		Ifindex: int32(ifc.Index),
		Type:    unix.PACKET_MR_MULTICAST,
		Alen:    6,
	}
	g := group.Bytes()
	copy(mreq.Address[:6], g[:])

	if err := unix.SetsockoptPacketMreq(s.fd, unix.SOL_PACKET, op, &mreq); err != nil {
		return fmt.Errorf("xsock: multicast membership on %s: %w", ifc.Name, err)
	}
	return nil
}

// Close 关闭套接字。幂等。
func (s *PacketSocket) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := unix.Close(s.fd); err != nil {
		return fmt.Errorf("xsock: close: %w", err)
	}
	return nil
}

// htons 主机序转网络序（16 位）。
// AF_PACKET 的 protocol 字段要求网络字节序。
func htons(v uint16) uint16 {
	return v<<8 | v>>8
}
