package xeth

import "time"

// TransportProfileURI 本传输实现对应的 OPC UA 传输配置标识。
const TransportProfileURI = "http://opcfoundation.org/UA-Profile/Transport/pubsub-eth-uadp"

// Channel 是 PubSub 传输通道抽象。
// 以太网变体是其中一种实现，上层引擎按统一接口驱动。
type Channel interface {
	// Register 为接收注册（多播目标时加入多播组）。
	Register() error

	// Unregister 取消接收注册（多播目标时离开多播组）。
	Unregister() error

	// Send 发送一帧不透明载荷。
	Send(payload []byte) error

	// Receive 接收一帧载荷，timeout 是底层接收路径的等待提示。
	Receive(timeout time.Duration) ([]byte, error)

	// State 返回当前生命周期状态。
	State() ChannelState

	// Close 关闭通道并释放资源。之后通道引用视为悬垂。
	Close() error
}

// TransportLayer 描述一种 PubSub 传输实现，供上层引擎注册。
type TransportLayer struct {
	// TransportProfileURI 标识此传输实现。
	TransportProfileURI string

	// CreateChannel 按连接配置创建通道。
	CreateChannel func(cfg ConnectionConfig) (Channel, error)
}

// NewEthernetTransportLayer 返回以太网传输层工厂。
// io 被该工厂创建的所有通道共享注入；opts 应用到每个通道。
func NewEthernetTransportLayer(io PacketIO, opts ...Option) TransportLayer {
	return TransportLayer{
		TransportProfileURI: TransportProfileURI,
		CreateChannel: func(cfg ConnectionConfig) (Channel, error) {
			return Open(io, cfg, opts...)
		},
	}
}
