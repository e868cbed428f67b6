package strview

import "strings"

// byteView 把单个字节包装成一字节视图，单字符版本统一经由它归约
func byteView(c byte) View {
	return View{s: string([]byte{c})}
}

// Find 从pos起正向查找o首次出现的位置，未找到返回Npos。
// 空视图中查找空针且pos为0时返回0；pos越过尾部或针放不下时返回Npos。
func (v View) Find(o View, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(v.s) || len(o.s) > len(v.s)-pos {
		return Npos
	}
	if i := strings.Index(v.s[pos:], o.s); i >= 0 {
		return pos + i
	}
	return Npos
}

// FindByte 单字符版本的Find
func (v View) FindByte(c byte, pos int) int {
	return v.Find(byteView(c), pos)
}

// Rfind 反向查找，返回不超过pos的最右匹配位置。
// 空针在钳制后的位置上即视为命中，返回min(pos, size)。
func (v View) Rfind(o View, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if len(o.s) == 0 {
		return min(pos, len(v.s))
	}
	if len(o.s) > len(v.s) {
		return Npos
	}
	end := min(pos, len(v.s)-len(o.s)) + len(o.s)
	if i := strings.LastIndex(v.s[:end], o.s); i >= 0 {
		return i
	}
	return Npos
}

// RfindByte 单字符版本的Rfind
func (v View) RfindByte(c byte, pos int) int {
	return v.Rfind(byteView(c), pos)
}

// FindFirstOf 从pos起找第一个出现在set中的字符，按字节判定归属
func (v View) FindFirstOf(set View, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for ; pos < len(v.s); pos++ {
		if strings.IndexByte(set.s, v.s[pos]) >= 0 {
			return pos
		}
	}
	return Npos
}

// FindFirstOfByte 单字符集合版本
func (v View) FindFirstOfByte(c byte, pos int) int {
	return v.FindFirstOf(byteView(c), pos)
}

// FindLastOf 把pos钳制到size-1后向前找最后一个出现在set中的字符
func (v View) FindLastOf(set View, pos int) int {
	if len(v.s) == 0 || pos < 0 {
		return Npos
	}
	for pos = min(pos, len(v.s)-1); pos >= 0; pos-- {
		if strings.IndexByte(set.s, v.s[pos]) >= 0 {
			return pos
		}
	}
	return Npos
}

// FindLastOfByte 单字符集合版本
func (v View) FindLastOfByte(c byte, pos int) int {
	return v.FindLastOf(byteView(c), pos)
}

// FindFirstNotOf 从pos起找第一个不在set中的字符
func (v View) FindFirstNotOf(set View, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for ; pos < len(v.s); pos++ {
		if strings.IndexByte(set.s, v.s[pos]) < 0 {
			return pos
		}
	}
	return Npos
}

// FindFirstNotOfByte 单字符集合版本
func (v View) FindFirstNotOfByte(c byte, pos int) int {
	return v.FindFirstNotOf(byteView(c), pos)
}

// FindLastNotOf 把pos钳制到size-1后向前找最后一个不在set中的字符
func (v View) FindLastNotOf(set View, pos int) int {
	if len(v.s) == 0 || pos < 0 {
		return Npos
	}
	for pos = min(pos, len(v.s)-1); pos >= 0; pos-- {
		if strings.IndexByte(set.s, v.s[pos]) < 0 {
			return pos
		}
	}
	return Npos
}

// FindLastNotOfByte 单字符集合版本
func (v View) FindLastNotOfByte(c byte, pos int) int {
	return v.FindLastNotOf(byteView(c), pos)
}
