package strview

import (
	"fmt"
	"hash/crc32"
	"io"
)

// Format 实现fmt.Formatter：内容带引号输出，支持宽度与'-'左对齐标志。
// 引号始终紧贴两端，填充落在引号内侧；填充字符固定为空格。
func (v View) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'q':
		pad := 0
		if w, ok := f.Width(); ok && w > len(v.s) {
			pad = w - len(v.s)
		}
		io.WriteString(f, `"`)
		if pad > 0 && !f.Flag('-') {
			writeFill(f, pad)
		}
		io.WriteString(f, v.s)
		if pad > 0 && f.Flag('-') {
			writeFill(f, pad)
		}
		io.WriteString(f, `"`)
	default:
		fmt.Fprintf(f, "%%!%c(strview.View=%q)", verb, v.s)
	}
}

// writeFill 写入n个空格填充
func writeFill(w io.Writer, n int) {
	for ; n > 0; n-- {
		io.WriteString(w, " ")
	}
}

// WriteTo 把视图内容写入w
func (v View) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.s)
	return int64(n), err
}

// Hash32 返回内容的CRC-32(IEEE)摘要。
// 内容与长度都相同的两个视图摘要必然相同，可直接用作哈希表键。
func (v View) Hash32() uint32 {
	return crc32.ChecksumIEEE(v.Data())
}
