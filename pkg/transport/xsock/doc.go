// Package xsock 提供 xeth.PacketIO 的 AF_PACKET 实现（仅 Linux）。
//
// PacketSocket 持有一个 SOCK_RAW 原始套接字，负责：
//
//   - 接口解析（net.InterfaceByName → 索引 + 硬件地址）
//   - 帧发送（构造 14 字节以太网头后 sendto 到指定接口）
//   - 链路层多播组管理（PACKET_ADD_MEMBERSHIP / PACKET_DROP_MEMBERSHIP）
//
// 每个通道使用独立的 PacketSocket，通道 Close 时套接字随之关闭。
// 发送使用 sockaddr_ll 指定出口接口，无需 bind。
//
// 创建套接字需要 CAP_NET_RAW 权限。
// 非 Linux 平台上 [New] 返回 [ErrUnsupportedPlatform]。
package xsock
