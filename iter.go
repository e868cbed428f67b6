package strview

import "iter"

// All 正向遍历(下标, 字节)
func (v View) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < len(v.s); i++ {
			if !yield(i, v.s[i]) {
				return
			}
		}
	}
}

// Backward 反向遍历(下标, 字节)，从末字符开始
func (v View) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := len(v.s) - 1; i >= 0; i-- {
			if !yield(i, v.s[i]) {
				return
			}
		}
	}
}
