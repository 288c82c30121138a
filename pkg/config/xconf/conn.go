package xconf

import (
	"fmt"

	"github.com/omeyang/xpubsub/pkg/transport/xeth"
	"github.com/omeyang/xpubsub/pkg/util/xmac"
)

// connectionsKey 连接数组在配置中的键。
const connectionsKey = "connections"

// Connections 读取并校验 connections 键下的全部连接配置。
//
// 校验规则（逐条）：
//   - 网络接口名非空
//   - URL 可解析且目标地址为合法硬件地址
//   - transport_profile_uri 缺省时补全为 xeth.TransportProfileURI，
//     显式给出时必须与其一致
//
// 任一条目校验失败整体返回错误，不返回部分结果。
func Connections(cfg Config) ([]xeth.ConnectionConfig, error) {
	var conns []xeth.ConnectionConfig
	if err := cfg.Unmarshal(connectionsKey, &conns); err != nil {
		return nil, err
	}
	if len(conns) == 0 {
		return nil, ErrNoConnections
	}

	for i := range conns {
		if err := validateConnection(&conns[i]); err != nil {
			return nil, fmt.Errorf("%w %q (index %d): %w", ErrInvalidConnection, conns[i].Name, i, err)
		}
	}
	return conns, nil
}

// Connection 按名称查找单个连接配置。
func Connection(cfg Config, name string) (xeth.ConnectionConfig, error) {
	conns, err := Connections(cfg)
	if err != nil {
		return xeth.ConnectionConfig{}, err
	}
	for _, c := range conns {
		if c.Name == name {
			return c, nil
		}
	}
	return xeth.ConnectionConfig{}, fmt.Errorf("%w: %s", ErrUnknownConnection, name)
}

// validateConnection 校验单个连接条目，并补全缺省字段。
func validateConnection(c *xeth.ConnectionConfig) error {
	if c.Address.NetworkInterface == "" {
		return fmt.Errorf("network_interface is required")
	}

	target, _, _, err := xeth.ParseEndpointURL(c.Address.URL)
	if err != nil {
		return err
	}
	if _, err := xmac.Parse(target); err != nil {
		return err
	}

	switch c.TransportProfileURI {
	case "":
		c.TransportProfileURI = xeth.TransportProfileURI
	case xeth.TransportProfileURI:
	default:
		return fmt.Errorf("unsupported transport profile %q", c.TransportProfileURI)
	}
	return nil
}
