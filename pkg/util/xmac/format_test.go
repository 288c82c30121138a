package xmac

import "testing"

func TestFormatString(t *testing.T) {
	a := MustParse("01-23-45-67-89-ab")

	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{"dash", FormatDash, "01-23-45-67-89-ab"},
		{"dash_upper", FormatDashUpper, "01-23-45-67-89-AB"},
		{"unknown_defaults_to_dash", Format(99), "01-23-45-67-89-ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.FormatString(tt.format); got != tt.want {
				t.Errorf("FormatString(%v) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want string
	}{
		{"zero", Addr{}, "00-00-00-00-00-00"},
		{"broadcast", Broadcast(), "ff-ff-ff-ff-ff-ff"},
		{"mixed", AddrFrom6([6]byte{0x0a, 0xbb, 0x0c, 0xdd, 0x0e, 0xff}), "0a-bb-0c-dd-0e-ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
