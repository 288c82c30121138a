// Package xeth 实现基于原始以太网帧的 PubSub 传输通道。
//
// xeth 将应用报文作为不透明字节序列，直接封装进以太网帧发送，
// 不经过 IP/UDP 传输层。对应 OPC UA PubSub 的 Ethernet 传输配置
// （transport profile: pubsub-eth-uadp），EtherType 0xB62C，
// 可选 802.1Q VLAN 标签。
//
// # 通道生命周期
//
// 通道通过 [Open] 创建，之后依次可以：
//
//	ch, err := xeth.Open(io, cfg)        // 打开，进入 Publisher 状态
//	err = ch.Register()                  // 目标为多播地址时加入多播组
//	err = ch.Send(payload)               // 封帧并发送
//	err = ch.Unregister()                // 离开多播组
//	err = ch.Close()                     // 释放资源
//
// 连接 URL 形如 opc.eth://01-0b-19-00-00-00:100.3，
// 目标 MAC 之后可选携带 VLAN id 和优先级。
//
// # 依赖注入
//
// 通道不内置网络栈。接口解析、帧发送、多播组管理统一抽象为
// [PacketIO] 接口，由调用方在 Open 时注入：生产环境使用
// xsock 的 AF_PACKET 实现，测试使用 [MemPacketIO]。
//
// # 并发模型
//
// 单个通道的操作是同步、非重入的：调用方必须保证同一通道上的
// 操作串行执行，包内不加锁。不同通道相互独立，可由不同 goroutine
// 并发驱动（前提是各自的 PacketIO 支持）。Send 没有内部队列和
// 重传，底层发送失败原样上报，重试策略归调用方（见 xretry）。
//
// # 接收
//
// 本传输变体的接收路径尚未实现，[EthernetChannel.Receive] 返回
// [ErrReceiveUnsupported]，调用方据此与"暂无数据"区分。
package xeth
