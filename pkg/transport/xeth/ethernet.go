package xeth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/omeyang/xpubsub/pkg/observability/xlog"
	"github.com/omeyang/xpubsub/pkg/util/xbuf"
	"github.com/omeyang/xpubsub/pkg/util/xmac"
)

// EthernetChannel 是 Channel 的以太网实现。
//
// 字段在 Open 时一次性确定，之后只有多播组成员关系和生命周期
// 状态会变化。单个通道的方法调用必须由调用方串行化（见包文档）。
type EthernetChannel struct {
	io     PacketIO
	logger xlog.Logger
	pool   *xbuf.Pool

	ifc    Interface // Open 时解析一次
	vid    uint16    // 0 表示不打 VLAN 标签
	prio   uint8     // 802.1Q PCP，0–7
	local  xmac.Addr // 出帧源地址（接口硬件地址）
	target xmac.Addr // 出帧目标地址
	state  ChannelState
}

// 编译期接口检查。
var _ Channel = (*EthernetChannel)(nil)

// Open 按连接配置创建以太网通道。
//
// 依次校验并解析：连接 URL（scheme、VLAN 参数）、目标 MAC、
// 本地网络接口（取自 cfg.Address.NetworkInterface）。任何一步失败
// 都完整回退，不会返回部分初始化的通道。成功后通道处于
// [StatePublisher]。
func Open(io PacketIO, cfg ConnectionConfig, opts ...Option) (*EthernetChannel, error) {
	if io == nil {
		return nil, ErrNilPacketIO
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger.With(xlog.Component("xeth"))

	target, vid, prio, err := ParseEndpointURL(cfg.Address.URL)
	if err != nil {
		logger.Error(context.Background(), "open failed: bad connection URL",
			xlog.Err(err))
		return nil, err
	}

	targetAddr, err := xmac.Parse(target)
	if err != nil {
		logger.Error(context.Background(), "open failed: bad target address",
			xlog.Err(err))
		return nil, fmt.Errorf("xeth: target address %q: %w", target, err)
	}

	ifName := cfg.Address.NetworkInterface
	if ifName == "" {
		return nil, fmt.Errorf("%w: empty network interface", ErrInvalidConfiguration)
	}
	ifc, err := io.ResolveInterface(ifName)
	if err != nil {
		logger.Error(context.Background(), "open failed: interface not found",
			xlog.Interface(ifName), xlog.Err(err))
		return nil, fmt.Errorf("%w: %q: %w", ErrInterfaceResolution, ifName, err)
	}

	logger.Info(context.Background(), "ethernet pubsub channel opened",
		xlog.Interface(ifc.Name), xlog.Address(targetAddr),
		vlanAttr(vid, prio))

	return &EthernetChannel{
		io:     io,
		logger: logger,
		pool:   o.pool,
		ifc:    ifc,
		vid:    vid,
		prio:   prio,
		local:  ifc.HardwareAddr,
		target: targetAddr,
		state:  StatePublisher,
	}, nil
}

// Register 为接收注册。
//
// 前置条件：状态 ∈ {Publisher, Ready}，否则返回 [ErrInvalidState]
// 且无副作用。目标不是多播地址时（单播/广播无需组成员关系）
// 不做组操作；多播目标在解析出的接口上加入对应多播组，
// 失败返回 [ErrInternal] 且状态保持不变。
// 成功后 Publisher 进入 PublisherSubscriber，Ready 进入 Subscriber。
func (c *EthernetChannel) Register() error {
	if !c.state.canRegister() {
		return fmt.Errorf("%w: register in state %s", ErrInvalidState, c.state)
	}
	if c.target.IsMulticast() {
		if err := c.io.JoinGroup(c.ifc, c.target); err != nil {
			c.logger.Error(context.Background(), "multicast join failed",
				xlog.Address(c.target), xlog.Err(err))
			return fmt.Errorf("%w: join group: %w", ErrInternal, err)
		}
	}
	if c.state == StatePublisher {
		c.state = StatePublisherSubscriber
	} else {
		c.state = StateSubscriber
	}
	return nil
}

// Unregister 取消接收注册。
//
// 前置条件：状态 ∈ {PublisherSubscriber, Subscriber}，否则返回
// [ErrInvalidState]。与 Register 互为镜像：非多播目标不做组操作，
// 多播目标离开多播组，失败返回 [ErrInternal] 且状态保持不变。
// 成功后 PublisherSubscriber 回到 Publisher，Subscriber 回到 Ready。
func (c *EthernetChannel) Unregister() error {
	if !c.state.canUnregister() {
		return fmt.Errorf("%w: unregister in state %s", ErrInvalidState, c.state)
	}
	if c.target.IsMulticast() {
		if err := c.io.LeaveGroup(c.ifc, c.target); err != nil {
			c.logger.Error(context.Background(), "multicast leave failed",
				xlog.Address(c.target), xlog.Err(err))
			return fmt.Errorf("%w: leave group: %w", ErrInternal, err)
		}
	}
	if c.state == StatePublisherSubscriber {
		c.state = StatePublisher
	} else {
		c.state = StateReady
	}
	return nil
}

// Send 将载荷封帧并发送到通道目标地址。
//
// 前置条件：状态 ∈ {Publisher, PublisherSubscriber}。
// VLAN id 非零时在载荷前插入 802.1Q 标签（TCI = vid | prio<<13，
// 内层 EtherType 0xB62C），外层 EtherType 为 0x8100；否则不打标签，
// EtherType 直接为 0xB62C。帧缓冲区取自池并在返回前归还，
// 成功与失败路径皆然。发送失败返回 [ErrTransmit]，不重试，
// 状态保持不变。
func (c *EthernetChannel) Send(payload []byte) error {
	if !c.state.canSend() {
		return fmt.Errorf("%w: send in state %s", ErrInvalidState, c.state)
	}

	buf := c.pool.Get(frameLen(len(payload), c.vid))
	defer c.pool.Put(buf)

	etherType := encodeFrame(buf, payload, c.vid, c.prio)
	if err := c.io.Transmit(c.ifc, buf, c.local, c.target, etherType); err != nil {
		c.logger.Error(context.Background(), "frame transmit failed",
			xlog.Interface(c.ifc.Name), xlog.Count(len(buf)), xlog.Err(err))
		return fmt.Errorf("%w: %w", ErrTransmit, err)
	}
	return nil
}

// Receive 接收一帧载荷。
//
// 前置条件与 Send 相同。本传输变体的接收路径尚未实现，
// 状态合法时返回 [ErrReceiveUnsupported]；timeout 参数当前只作
// 接口占位。
func (c *EthernetChannel) Receive(timeout time.Duration) ([]byte, error) {
	if !c.state.canSend() {
		return nil, fmt.Errorf("%w: receive in state %s", ErrInvalidState, c.state)
	}
	_ = timeout
	return nil, ErrReceiveUnsupported
}

// State 返回当前生命周期状态。
func (c *EthernetChannel) State() ChannelState {
	return c.state
}

// Target 返回通道的目标硬件地址。
func (c *EthernetChannel) Target() xmac.Addr {
	return c.target
}

// LocalAddr 返回出帧使用的源硬件地址。
func (c *EthernetChannel) LocalAddr() xmac.Addr {
	return c.local
}

// VLAN 返回通道的 VLAN id 和优先级，id 为 0 表示不打标签。
func (c *EthernetChannel) VLAN() (vid uint16, prio uint8) {
	return c.vid, c.prio
}

// Close 关闭通道并释放底层资源。
//
// 总是返回 nil：底层关闭失败只记日志，不阻止通道进入终态。
// 之后对通道的任何调用都属于调用方契约违例（状态检查会拦下
// Send/Receive/Register，但不提供并发安全保证）。
func (c *EthernetChannel) Close() error {
	if err := c.io.Close(); err != nil {
		c.logger.Warn(context.Background(), "packet I/O close failed", xlog.Err(err))
	}
	c.state = StateUnconfigured
	c.logger.Info(context.Background(), "ethernet pubsub channel closed",
		xlog.Interface(c.ifc.Name))
	return nil
}

// vlanAttr 构造日志用的 VLAN 属性。
func vlanAttr(vid uint16, prio uint8) slog.Attr {
	if vid == 0 {
		return slog.String("vlan", "untagged")
	}
	return slog.String("vlan", fmt.Sprintf("%d.%d", vid, prio))
}
