// Package xmac 提供以太网硬件地址（EUI-48/MAC-48）处理工具。
//
// xmac 面向链路层传输场景，提供类型安全的 MAC 地址操作：
//
//   - 短线分隔格式解析（OPC UA Part 14 约定：01-23-45-67-89-ab）
//   - 规范化输出（FormatDash / FormatDashUpper）
//   - 地址属性判断（单播/多播/广播）
//   - JSON/Text 序列化支持
//   - 地址运算（Compare/Next/Prev）
//
// # 快速示例
//
// 解析和格式化：
//
//	addr, err := xmac.Parse("01-23-45-67-89-AB")
//	fmt.Println(addr.String())  // 01-23-45-67-89-ab
//
// 多播判断（决定是否需要加入链路层多播组）：
//
//	if addr.IsMulticast() {
//	    // 需要 join/leave 多播组
//	}
//
// # 解析格式
//
// [Parse] 只接受短线分隔的 6 组十六进制，每组 1–2 位：
//
//	01-23-45-67-89-ab
//	1-2-3-4-5-6
//
// 冒号、点号等其他分隔符一律返回 [ErrInvalidFormat]。这是刻意收窄：
// 传输层的地址来源是连接 URL，格式由协议约定，宽松解析只会掩盖配置错误。
//
// # 设计决策
//
//   - 使用 [6]byte 固定数组而非 []byte 切片：值语义、可比较、栈分配
//   - 仅支持 EUI-48（6 字节），不支持 EUI-64（8 字节）
//   - 全部 2^48 个取值都是合法地址，零值即全零地址 00-00-00-00-00-00。
//     解析/格式化严格往返：对任意地址 a，Parse(a.String()) == a
//   - [Addr.IsMulticast] 采用多播组管理语义：首字节 bit 0 为 1 且非广播地址。
//     广播帧无需组成员关系，因此被排除在外
package xmac
