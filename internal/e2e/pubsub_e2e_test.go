//go:build e2e

// 端到端验证：配置文件 → 连接校验 → 通道生命周期 → 重试发送，
// 覆盖从 YAML 到线缆字节的完整链路（PacketIO 用内存实现替身）。
package e2e

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xpubsub/pkg/config/xconf"
	"github.com/omeyang/xpubsub/pkg/resilience/xretry"
	"github.com/omeyang/xpubsub/pkg/transport/xeth"
	"github.com/omeyang/xpubsub/pkg/util/xmac"
)

const pipelineYAML = `connections:
  - name: pub-multicast
    publisher_id: 2234
    address:
      network_interface: eth0
      url: opc.eth://01-00-5e-00-00-01:100.3
`

func TestPublishPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubsub.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pipelineYAML), 0600))

	cfg, err := xconf.New(path)
	require.NoError(t, err)

	conn, err := xconf.Connection(cfg, "pub-multicast")
	require.NoError(t, err)

	local := xmac.MustParse("02-00-00-00-00-aa")
	io := xeth.NewMemPacketIO(xeth.Interface{
		Index:        1,
		Name:         "eth0",
		HardwareAddr: local,
		MTU:          1500,
	})

	ch, err := xeth.Open(io, conn)
	require.NoError(t, err)
	require.Equal(t, xeth.StatePublisher, ch.State())

	// 多播目标注册加入多播组
	require.NoError(t, ch.Register())
	assert.Equal(t, 1, io.GroupCount(ch.Target()))

	payload := []byte("network message")
	sender, err := xretry.NewSender(ch, xretry.WithDelay(1))
	require.NoError(t, err)
	require.NoError(t, sender.Send(context.Background(), payload))

	sent := io.Sent()
	require.Len(t, sent, 1)
	frame := sent[0]

	assert.Equal(t, local, frame.Src)
	assert.Equal(t, xmac.MustParse("01-00-5e-00-00-01"), frame.Dst)

	// VLAN 标签帧：外层 EtherType 0x8100，TCI 带 VID 100 / PCP 3，内层 0xB62C
	assert.Equal(t, uint16(xeth.EtherTypeVLAN), frame.EtherType)
	require.GreaterOrEqual(t, len(frame.Frame), xeth.VLANTagLen+len(payload))
	tci := binary.BigEndian.Uint16(frame.Frame[0:2])
	assert.Equal(t, uint16(100|3<<13), tci)
	assert.Equal(t, uint16(xeth.EtherTypeUADP), binary.BigEndian.Uint16(frame.Frame[2:4]))
	assert.Equal(t, payload, frame.Frame[xeth.VLANTagLen:])

	require.NoError(t, ch.Unregister())
	assert.Equal(t, 0, io.GroupCount(ch.Target()))
	require.NoError(t, ch.Close())
	assert.Equal(t, xeth.StateUnconfigured, ch.State())
}
