// Package json 封装json-iterator，作为标准库encoding/json的兼容替代
package json

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal 序列化为JSON
func Marshal(v interface{}) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent 带缩进序列化
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal 反序列化JSON
func Unmarshal(data []byte, v interface{}) error {
	return api.Unmarshal(data, v)
}

// NewEncoder 创建流式编码器
func NewEncoder(w io.Writer) *jsoniter.Encoder {
	return api.NewEncoder(w)
}

// NewDecoder 创建流式解码器
func NewDecoder(r io.Reader) *jsoniter.Decoder {
	return api.NewDecoder(r)
}
