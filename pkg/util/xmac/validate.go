package xmac

// IsUnicast 报告 a 是否为单播地址。
// 单播地址的第一字节最低位（bit 0）为 0。
func (a Addr) IsUnicast() bool {
	return (a.bytes[0] & 0x01) == 0
}

// IsMulticast 报告 a 是否为多播地址（多播组管理语义）。
// 条件：第一字节最低位（bit 0）为 1，且不是广播地址。
//
// 广播地址 ff-ff-ff-ff-ff-ff 虽然 bit 0 为 1，但广播帧的接收
// 不依赖多播组成员关系，因此返回 false。链路层传输用此方法
// 决定是否需要执行多播组 join/leave。
func (a Addr) IsMulticast() bool {
	return (a.bytes[0]&0x01) == 1 && !a.IsBroadcast()
}

// IsBroadcast 报告 a 是否为广播地址（ff-ff-ff-ff-ff-ff）。
func (a Addr) IsBroadcast() bool {
	return a == broadcastAddr()
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（LAA）。
// LAA 的第一字节次低位（bit 1）为 1。
// 虚拟机、容器等通常使用 LAA。
func (a Addr) IsLocallyAdministered() bool {
	return (a.bytes[0] & 0x02) == 0x02
}

// IsUniversallyAdministered 报告 a 是否为全球唯一地址（UAA）。
// UAA 的第一字节次低位（bit 1）为 0。
// 物理网卡出厂时分配的地址通常是 UAA。
func (a Addr) IsUniversallyAdministered() bool {
	return (a.bytes[0] & 0x02) == 0
}

// IsZero 报告 a 是否为全零地址（00-00-00-00-00-00）。
// 全零地址与零值 Addr{} 相同，通常表示"未指定"。
func (a Addr) IsZero() bool {
	return a == Addr{}
}
