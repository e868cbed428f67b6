// Package strview 提供对连续字符序列的只读、非占有视图。
// View 以(指针,长度)二元组引用外部内存，切片、查找、比较均不拷贝字节。
package strview

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// Npos 表示"未找到"的哨兵位置，取尺寸类型的最大值
const Npos = math.MaxInt

// ErrOutOfRange 请求位置超出视图长度
var ErrOutOfRange = errors.New("strview: position out of range")

// View 只读字符视图，内部是一个字符串头(指针+长度)。
// 零值即为规范空视图。视图不持有底层内存：
// 底层缓冲区的存活由调用方保证，缓冲区失效后继续使用视图属于契约违例。
// View 是廉价的值类型，复制视图从不复制被引用的字符。
type View struct {
	s string
}

// S 从字符串创建视图，别名引用，不拷贝
func S(s string) View {
	return View{s: s}
}

// B 从字节切片创建视图，零拷贝别名
// 视图存续期间不得修改或释放b
func B(b []byte) View {
	return View{s: bytesToString(b)}
}

// C 从NUL结尾的缓冲区创建视图，长度扫描到第一个0x00为止
// b为nil时直接返回空视图，不做扫描
func C(b []byte) View {
	if b == nil {
		return View{}
	}
	return View{s: bytesToString(scanTerminated(b))}
}

// scanTerminated 截取到NUL终止符，缺少终止符时取全长。
// 终止符扫描集中在此，其它编码可替换自己的扫描规则。
func scanTerminated(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// Byte 无检查下标访问，pos越界时由运行时边界检查panic
func (v View) Byte(pos int) byte {
	return v.s[pos]
}

// At 带检查的下标访问
func (v View) At(pos int) (byte, error) {
	if pos < 0 || pos >= len(v.s) {
		return 0, fmt.Errorf("at(%d) with size %d: %w", pos, len(v.s), ErrOutOfRange)
	}
	return v.s[pos], nil
}

// Front 首字符，空视图panic
func (v View) Front() byte {
	return v.s[0]
}

// Back 末字符，空视图panic
func (v View) Back() byte {
	return v.s[len(v.s)-1]
}

// Data 返回底层字节的零拷贝别名，空视图返回nil
// 返回的切片只读，写入属于契约违例
func (v View) Data() []byte {
	if len(v.s) == 0 {
		return nil
	}
	return stringToBytes(v.s)
}

// Size 字符数
func (v View) Size() int {
	return len(v.s)
}

// Len 同Size，保持与生态命名一致
func (v View) Len() int {
	return len(v.s)
}

// MaxSize 尺寸类型可表示的最大长度
func (v View) MaxSize() int {
	return math.MaxInt
}

// Empty 视图是否为空
func (v View) Empty() bool {
	return len(v.s) == 0
}

// String 以字符串形式返回数据，与视图共享内存
func (v View) String() string {
	return v.s
}

// ByteSlice 返回数据的一个副本，作为字节切片
func (v View) ByteSlice() []byte {
	c := make([]byte, len(v.s))
	copy(c, v.s)
	return c
}

// RemovePrefix 前端收窄n个字符，n超出[0,size]时panic
func (v *View) RemovePrefix(n int) {
	v.s = v.s[n:]
}

// RemoveSuffix 尾端收窄n个字符，n超出[0,size]时panic
func (v *View) RemoveSuffix(n int) {
	v.s = v.s[:len(v.s)-n]
}

// Swap 交换两个视图的(指针,长度)对，不触碰被引用内存
func (v *View) Swap(o *View) {
	v.s, o.s = o.s, v.s
}

// Copy 把[pos, pos+rcount)拷贝到dst，rcount = min(count, size-pos)。
// 实际拷贝量还受len(dst)约束，返回拷贝的字符数。
func (v View) Copy(dst []byte, count, pos int) (int, error) {
	if pos < 0 || pos > len(v.s) || count < 0 {
		return 0, fmt.Errorf("copy(%d, %d) with size %d: %w", count, pos, len(v.s), ErrOutOfRange)
	}
	rcount := min(count, len(v.s)-pos)
	return copy(dst, v.s[pos:pos+rcount]), nil
}

// Substr 返回[pos, pos+rcount)的子视图，rcount = min(count, size-pos)。
// rcount为0时返回规范空视图，保证所有空视图彼此等价。
func (v View) Substr(pos, count int) (View, error) {
	if pos < 0 || pos > len(v.s) || count < 0 {
		return View{}, fmt.Errorf("substr(%d, %d) with size %d: %w", pos, count, len(v.s), ErrOutOfRange)
	}
	rcount := min(count, len(v.s)-pos)
	if rcount == 0 {
		return View{}, nil
	}
	return View{s: v.s[pos : pos+rcount]}, nil
}
