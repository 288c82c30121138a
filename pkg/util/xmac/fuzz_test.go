package xmac

import "testing"

// FuzzParse 验证 Parse 对任意输入不 panic，且解析成功时严格往返。
func FuzzParse(f *testing.F) {
	f.Add("01-23-45-67-89-ab")
	f.Add("1-2-3-4-5-6")
	f.Add("ff-ff-ff-ff-ff-ff")
	f.Add("01:23:45:67:89:ab")
	f.Add("")
	f.Add("01-23-45")
	f.Add("012-34-56-78-9a-bc")

	f.Fuzz(func(t *testing.T, s string) {
		addr, err := Parse(s)
		if err != nil {
			return
		}
		// 解析成功的地址必须能往返
		back, err := Parse(addr.String())
		if err != nil {
			t.Fatalf("Parse(%q).String() = %q did not re-parse: %v", s, addr.String(), err)
		}
		if back != addr {
			t.Fatalf("round trip mismatch: %v != %v", back, addr)
		}
	})
}

// FuzzParseBytes 验证 6 字节值域全覆盖的往返性质。
func FuzzParseBytes(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0, 0, 0})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{0x01, 0x0b, 0x19, 0x00, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, b []byte) {
		addr, err := ParseBytes(b)
		if err != nil {
			return
		}
		back, err := Parse(addr.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", addr.String(), err)
		}
		if back != addr {
			t.Fatalf("round trip mismatch: %v != %v", back, addr)
		}
	})
}
