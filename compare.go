package strview

// Compare 三路比较：先按公共长度逐字节比较，再按长度决胜。
// 所有相等与排序判断都由其符号导出，比较逻辑只此一份。
func (v View) Compare(o View) int {
	rlen := min(len(v.s), len(o.s))
	a, b := v.s[:rlen], o.s[:rlen]
	if a != b {
		if a < b {
			return -1
		}
		return 1
	}
	switch {
	case len(v.s) == len(o.s):
		return 0
	case len(v.s) < len(o.s):
		return -1
	default:
		return 1
	}
}

// CompareRange 等价于先Substr(pos1, count1)再与o做两视图比较
func (v View) CompareRange(pos1, count1 int, o View) (int, error) {
	sub, err := v.Substr(pos1, count1)
	if err != nil {
		return 0, err
	}
	return sub.Compare(o), nil
}

// CompareRanges 两侧都先取子视图，再做两视图比较
func (v View) CompareRanges(pos1, count1 int, o View, pos2, count2 int) (int, error) {
	sub1, err := v.Substr(pos1, count1)
	if err != nil {
		return 0, err
	}
	sub2, err := o.Substr(pos2, count2)
	if err != nil {
		return 0, err
	}
	return sub1.Compare(sub2), nil
}

// Equal 内容与长度都相等
func (v View) Equal(o View) bool {
	return v.s == o.s
}

// EqualString 与字符串比较内容
func (v View) EqualString(s string) bool {
	return v.s == s
}

// EqualBytes 与字节切片比较内容
func (v View) EqualBytes(b []byte) bool {
	return v.s == bytesToString(b)
}

// Less 按字典序+长度决胜排序
func (v View) Less(o View) bool {
	return v.s < o.s
}

// StartsWith 是否以o为前缀，逐字节精确比较
func (v View) StartsWith(o View) bool {
	return len(v.s) >= len(o.s) && v.s[:len(o.s)] == o.s
}

// StartsWithByte 非空且首字符等于c
func (v View) StartsWithByte(c byte) bool {
	return len(v.s) > 0 && v.s[0] == c
}

// EndsWith 是否以o为后缀
func (v View) EndsWith(o View) bool {
	return len(v.s) >= len(o.s) && v.s[len(v.s)-len(o.s):] == o.s
}

// EndsWithByte 非空且末字符等于c
func (v View) EndsWithByte(c byte) bool {
	return len(v.s) > 0 && v.s[len(v.s)-1] == c
}
