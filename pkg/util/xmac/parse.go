package xmac

import (
	"fmt"
	"strings"
)

// Parse 解析短线分隔的 MAC 地址字符串。
//
// 接受的格式：6 组十六进制数字，每组 1–2 位，组间以单个 '-' 分隔
// （OPC UA Part 14 的 Ethernet 目标地址约定）：
//
//	01-23-45-67-89-ab
//	01-23-45-67-89-AB
//	1-2-3-4-5-6
//
// 输入会自动去除首尾空白。大小写不敏感。
//
// 以下情况返回 [ErrInvalidFormat]：组为空、组值超过 0xff、
// 分隔符缺失或使用了其他字符、组数不是 6、末尾有多余字符。
func Parse(s string) (Addr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Addr{}, ErrEmpty
	}

	var addr Addr
	pos := 0
	for group := 0; group < 6; group++ {
		val, n := scanHexByte(s[pos:])
		if n == 0 {
			return Addr{}, fmt.Errorf("%w: %q: bad group %d", ErrInvalidFormat, s, group+1)
		}
		addr.bytes[group] = val
		pos += n

		if group == 5 {
			// 最后一组之后必须恰好消费完整个输入
			if pos != len(s) {
				return Addr{}, fmt.Errorf("%w: %q: trailing characters", ErrInvalidFormat, s)
			}
			return addr, nil
		}

		if pos >= len(s) {
			return Addr{}, fmt.Errorf("%w: %q: want 6 groups, got %d", ErrInvalidFormat, s, group+1)
		}
		if s[pos] != '-' {
			return Addr{}, fmt.Errorf("%w: %q: want '-' separator, got %q", ErrInvalidFormat, s, s[pos])
		}
		pos++ // skip '-'
	}
	return addr, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseBytes 从 6 字节切片创建 MAC 地址。
// 长度不为 6 时返回 [ErrInvalidLength]。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: want 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// scanHexByte 扫描 1–2 位十六进制数字，返回其值和消费的字符数。
// 无有效数字时返回 (0, 0)。第三位仍是十六进制数字时同样返回 (0, 0)，
// 因为该组的值必然超过一个字节。
func scanHexByte(s string) (byte, int) {
	var val uint16
	n := 0
	for n < len(s) && n < 3 {
		d, ok := hexDigit(s[n])
		if !ok {
			break
		}
		val = val<<4 | uint16(d)
		n++
	}
	if n == 0 || n > 2 {
		return 0, 0
	}
	return byte(val), n
}

// hexDigit 返回单个十六进制字符的值。
func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
