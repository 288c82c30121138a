package xmac

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Addr
		wantErr error
	}{
		// 规范格式
		{"dash_lower", "01-23-45-67-89-ab", Addr{bytes: [6]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}}, nil},
		{"dash_upper", "01-23-45-67-89-AB", Addr{bytes: [6]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}}, nil},
		{"dash_mixed", "Aa-Bb-Cc-Dd-Ee-Ff", Addr{bytes: [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}}, nil},

		// 单位数分组
		{"single_digit", "1-2-3-4-5-6", Addr{bytes: [6]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}}, nil},
		{"mixed_width", "a-bb-c-dd-e-ff", Addr{bytes: [6]byte{0x0a, 0xbb, 0x0c, 0xdd, 0x0e, 0xff}}, nil},

		// 特殊地址
		{"zero", "00-00-00-00-00-00", Addr{}, nil},
		{"broadcast", "ff-ff-ff-ff-ff-ff", Broadcast(), nil},
		{"uadp_default_dest", "01-0b-19-00-00-00", Addr{bytes: [6]byte{0x01, 0x0b, 0x19, 0x00, 0x00, 0x00}}, nil},

		// 带空白
		{"leading_space", "  01-23-45-67-89-ab", Addr{bytes: [6]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}}, nil},
		{"trailing_space", "01-23-45-67-89-ab  ", Addr{bytes: [6]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}}, nil},

		// 错误情况
		{"empty", "", Addr{}, ErrEmpty},
		{"only_space", "   ", Addr{}, ErrEmpty},
		{"too_few_groups", "01-23-45", Addr{}, ErrInvalidFormat},
		{"too_many_groups", "01-23-45-67-89-ab-cd", Addr{}, ErrInvalidFormat},
		{"colon_separator", "01:23:45:67:89:AB", Addr{}, ErrInvalidFormat},
		{"dot_separator", "0123.4567.89ab", Addr{}, ErrInvalidFormat},
		{"bare_hex", "0123456789ab", Addr{}, ErrInvalidFormat},
		{"non_hex_digit", "1g-23-45-67-89-ab", Addr{}, ErrInvalidFormat},
		{"group_too_wide", "012-34-56-78-9a-bc", Addr{}, ErrInvalidFormat},
		{"empty_group", "01--45-67-89-ab", Addr{}, ErrInvalidFormat},
		{"trailing_separator", "01-23-45-67-89-ab-", Addr{}, ErrInvalidFormat},
		{"trailing_garbage", "01-23-45-67-89-abzz", Addr{}, ErrInvalidFormat},
		{"mixed_separator", "01-23:45-67-89-ab", Addr{}, ErrInvalidFormat},
		{"inner_space", "01-23-45 67-89-ab", Addr{}, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("Parse(%q) error = nil, wantErr %v", tt.input, tt.wantErr)
					return
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Parse(%q) unexpected error = %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		addr := MustParse("01-23-45-67-89-ab")
		want := Addr{bytes: [6]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}}
		if addr != want {
			t.Errorf("MustParse() = %v, want %v", addr, want)
		}
	})

	t.Run("invalid_panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(invalid) did not panic")
			}
		}()
		MustParse("invalid")
	})
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    Addr
		wantErr error
	}{
		{"valid", []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}, Addr{bytes: [6]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}}, nil},
		{"zero", []byte{0, 0, 0, 0, 0, 0}, Addr{}, nil},
		{"broadcast", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, Broadcast(), nil},
		{"too_short", []byte{0x01, 0x23, 0x45}, Addr{}, ErrInvalidLength},
		{"too_long", []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0x00}, Addr{}, ErrInvalidLength},
		{"nil", nil, Addr{}, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBytes(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseBytes(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseBytes(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseRoundTrip 验证格式化与解析的严格往返。
func TestParseRoundTrip(t *testing.T) {
	addrs := []Addr{
		{},
		Broadcast(),
		{bytes: [6]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}},
		{bytes: [6]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x01}},
		{bytes: [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xfe}},
		{bytes: [6]byte{0x01, 0x00, 0x5e, 0x00, 0x00, 0x01}},
	}
	for _, a := range addrs {
		got, err := Parse(a.String())
		if err != nil {
			t.Errorf("Parse(%q) unexpected error = %v", a.String(), err)
			continue
		}
		if got != a {
			t.Errorf("Parse(%q) = %v, want %v", a.String(), got, a)
		}
	}
}
