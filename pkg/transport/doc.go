// Package transport 提供 PubSub 传输相关的子包。
//
// 子包列表：
//   - xeth: 以太网 PubSub 传输通道，802.1Q VLAN 打标与状态机
//   - xsock: AF_PACKET 原始套接字，xeth 的 Linux 链路层实现
//
// 设计原则：
//   - 通道逻辑与套接字能力分离（PacketIO 接口注入），
//     单元测试不需要真实网卡与 CAP_NET_RAW
//   - 发送语义 at-most-once，重试由调用方决策
package transport
