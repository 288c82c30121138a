package xeth

import (
	"fmt"
	"strconv"
	"strings"
)

// EndpointScheme 以太网连接 URL 的 scheme 前缀。
const EndpointScheme = "opc.eth://"

// VLAN 取值范围。
const (
	maxVLANID   = 4094 // 12 位，0 表示不打标签，4095 保留
	maxPriority = 7    // 3 位 PCP
)

// ParseEndpointURL 解析以太网连接 URL。
//
// 格式：opc.eth://<target>[:<vid>[.<prio>]]
//
//	opc.eth://01-0b-19-00-00-00          目标地址，不打 VLAN 标签
//	opc.eth://01-0b-19-00-00-00:100      VLAN id 100，优先级 0
//	opc.eth://01-0b-19-00-00-00:100.3    VLAN id 100，优先级 3
//
// 返回目标地址字符串（未解析的 MAC 文本）、VLAN id 和优先级。
// target 的合法性由调用方通过 xmac.Parse 校验。
// 格式错误返回 [ErrInvalidConfiguration]。
func ParseEndpointURL(url string) (target string, vid uint16, prio uint8, err error) {
	rest, ok := strings.CutPrefix(url, EndpointScheme)
	if !ok {
		return "", 0, 0, fmt.Errorf("%w: URL %q: missing %q scheme", ErrInvalidConfiguration, url, EndpointScheme)
	}
	if rest == "" {
		return "", 0, 0, fmt.Errorf("%w: URL %q: empty target", ErrInvalidConfiguration, url)
	}

	target, vlanPart, hasVLAN := strings.Cut(rest, ":")
	if target == "" {
		return "", 0, 0, fmt.Errorf("%w: URL %q: empty target", ErrInvalidConfiguration, url)
	}
	if !hasVLAN {
		return target, 0, 0, nil
	}

	vidPart, prioPart, hasPrio := strings.Cut(vlanPart, ".")
	v, err := strconv.ParseUint(vidPart, 10, 16)
	if err != nil || v > maxVLANID {
		return "", 0, 0, fmt.Errorf("%w: URL %q: bad VLAN id %q", ErrInvalidConfiguration, url, vidPart)
	}
	if !hasPrio {
		return target, uint16(v), 0, nil
	}

	p, err := strconv.ParseUint(prioPart, 10, 8)
	if err != nil || p > maxPriority {
		return "", 0, 0, fmt.Errorf("%w: URL %q: bad VLAN priority %q", ErrInvalidConfiguration, url, prioPart)
	}
	return target, uint16(v), uint8(p), nil
}
