package xmac

// Format 定义 MAC 地址的格式化风格。
type Format uint8

const (
	// FormatDash 使用短线分隔，小写：01-23-45-67-89-ab
	FormatDash Format = iota
	// FormatDashUpper 使用短线分隔，大写：01-23-45-67-89-AB
	FormatDashUpper
)

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// String 返回规范格式（小写短线）的字符串表示。
// 每组固定两位，因此对任意地址 a，Parse(a.String()) == a。
func (a Addr) String() string {
	return a.FormatString(FormatDash)
}

// FormatString 按指定格式返回 MAC 地址字符串。
func (a Addr) FormatString(f Format) string {
	switch f {
	case FormatDashUpper:
		return formatDash(a.bytes, hexUpper)
	default:
		return formatDash(a.bytes, hexLower)
	}
}

// formatDash 格式化为短线分隔的 6 组两位十六进制（xx-xx-xx-xx-xx-xx）。
// 预分配精确大小，零额外分配。
func formatDash(b [6]byte, hex string) string {
	// 6*2 + 5 = 17 字节
	var buf [17]byte
	for i := range 6 {
		buf[i*3] = hex[b[i]>>4]
		buf[i*3+1] = hex[b[i]&0x0f]
		if i < 5 {
			buf[i*3+2] = '-'
		}
	}
	return string(buf[:])
}
