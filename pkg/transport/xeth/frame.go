package xeth

import "encoding/binary"

// EtherType 取值。
const (
	// EtherTypeUADP 是 OPC UA PubSub（UADP over Ethernet）注册的 EtherType。
	EtherTypeUADP uint16 = 0xB62C

	// EtherTypeVLAN 是 802.1Q VLAN 标签的标准 EtherType。
	// 打标签的帧外层 EtherType 为此值，真实载荷类型移入标签之后。
	EtherTypeVLAN uint16 = 0x8100
)

// VLANTagLen 802.1Q 标签长度：2 字节 TCI + 2 字节内层 EtherType。
const VLANTagLen = 4

// EncodeTagControl 打包 802.1Q 的 tag-control-info 字段：vid | prio<<13。
// DEI 位恒为 0。
func EncodeTagControl(vid uint16, prio uint8) uint16 {
	return vid | uint16(prio)<<13
}

// putVLANTag 在 buf 的前 4 字节写入 802.1Q 标签：
// 网络字节序的 TCI，随后是内层 EtherType（即应用 EtherType 0xB62C）。
// buf 长度不足 4 时 panic（调用方按 frameLen 分配，不会出现）。
func putVLANTag(buf []byte, vid uint16, prio uint8) {
	binary.BigEndian.PutUint16(buf[0:2], EncodeTagControl(vid, prio))
	binary.BigEndian.PutUint16(buf[2:4], EtherTypeUADP)
}

// frameLen 返回给定载荷的帧缓冲区长度。
// VLAN id 非零时额外需要 4 字节标签空间。
func frameLen(payloadLen int, vid uint16) int {
	if vid != 0 {
		return payloadLen + VLANTagLen
	}
	return payloadLen
}

// encodeFrame 将载荷编码进 buf 并返回外层 EtherType。
// buf 长度必须等于 frameLen(len(payload), vid)。
func encodeFrame(buf, payload []byte, vid uint16, prio uint8) (etherType uint16) {
	if vid == 0 {
		copy(buf, payload)
		return EtherTypeUADP
	}
	putVLANTag(buf, vid, prio)
	copy(buf[VLANTagLen:], payload)
	return EtherTypeVLAN
}
