package xmac

import (
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出规范的小写短线格式（01-23-45-67-89-ab）。
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受 [Parse] 支持的格式。
// 空输入设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的小写短线格式字符串（"01-23-45-67-89-ab"）。
//
// MAC 地址字符串仅包含 [0-9a-f-] 字符，无需 JSON 转义，
// 因此直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (a Addr) MarshalJSON() ([]byte, error) {
	s := a.String()
	// len(`"`) + 17 + len(`"`) = 19
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 接受 [Parse] 支持的格式。
// 空字符串或 null 设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if s == "" {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
