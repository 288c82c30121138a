package xeth

// ChannelState 通道生命周期状态。
//
// 状态转换图（所有转换由显式调用触发，无后台协程）：
//
//	Unconfigured ──Open()──→ Publisher ──Register()──→ PublisherSubscriber
//	                             ↑                           │
//	                             └───────Unregister()────────┘
//
//	Ready ──Register()──→ Subscriber ──Unregister()──→ Ready
//
//	任何状态 ──Close()──→ Unconfigured
//
// 操作前置条件：
//
//	Register:   {Publisher, Ready}
//	Unregister: {PublisherSubscriber, Subscriber}
//	Send:       {Publisher, PublisherSubscriber}
//	Receive:    {Publisher, PublisherSubscriber}
//
// 操作失败不产生隐式状态转换。
type ChannelState uint8

const (
	// StateUnconfigured 未配置。新建或已关闭的通道处于此状态。
	StateUnconfigured ChannelState = iota

	// StatePublisher 发布方。Open 成功后的初始状态。
	StatePublisher

	// StateSubscriber 订阅方。
	StateSubscriber

	// StatePublisherSubscriber 同时作为发布方和订阅方。
	StatePublisherSubscriber

	// StateReady 就绪，尚未承担发布或订阅角色。
	StateReady

	// StateError 出错。本实现不会自动进入此状态，保留给上层引擎使用。
	StateError
)

// String 返回状态的字符串表示。
func (s ChannelState) String() string {
	switch s {
	case StateUnconfigured:
		return "Unconfigured"
	case StatePublisher:
		return "Publisher"
	case StateSubscriber:
		return "Subscriber"
	case StatePublisherSubscriber:
		return "PublisherSubscriber"
	case StateReady:
		return "Ready"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// canRegister 报告当前状态下是否允许 Register。
func (s ChannelState) canRegister() bool {
	return s == StatePublisher || s == StateReady
}

// canUnregister 报告当前状态下是否允许 Unregister。
func (s ChannelState) canUnregister() bool {
	return s == StatePublisherSubscriber || s == StateSubscriber
}

// canSend 报告当前状态下是否允许 Send/Receive。
func (s ChannelState) canSend() bool {
	return s == StatePublisher || s == StatePublisherSubscriber
}
