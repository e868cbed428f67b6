package strview

import "unsafe"

// bytesToString 零拷贝[]byte转string，返回值与b共享内存
// 返回的字符串存续期间不得修改b
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringToBytes 零拷贝string转[]byte，返回的切片只读
func stringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
