// Package grep 基于strview.View的逐行字节匹配引擎。
// 整个搜索过程只在调用方持有的缓冲区上做视图运算，不拷贝行内容。
package grep

import (
	"os"

	"strview"

	"github.com/sirupsen/logrus"
)

// Options 搜索选项
type Options struct {
	Pattern   string // 搜索模式，按字节精确匹配
	TrimSpace bool   // 匹配前去除行首尾空白
	TrimSet   string // 视作空白的字符集合，空串取默认" \t"
	MaxLine   int    // 单行最大字节数，超出的行跳过，0为不限制
}

// Match 一次命中
type Match struct {
	File   string `json:"file"`
	Line   int    `json:"line"`   // 行号，从1开始
	Column int    `json:"column"` // 列号，从1开始，按修剪后的行计
	Text   string `json:"text"`
}

// Engine 搜索引擎
type Engine struct {
	pattern strview.View
	trimSet strview.View
	opts    Options
}

// New 创建搜索引擎
func New(opts Options) *Engine {
	if opts.TrimSet == "" {
		opts.TrimSet = " \t"
	}
	return &Engine{
		pattern: strview.S(opts.Pattern),
		trimSet: strview.S(opts.TrimSet),
		opts:    opts,
	}
}

// SearchFile 搜索单个文件
func (e *Engine) SearchFile(path string) ([]Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return e.Search(path, data), nil
}

// Search 在data中搜索，name只用于标注结果。
// data由调用方持有，搜索期间不得修改。
func (e *Engine) Search(name string, data []byte) []Match {
	buf := strview.B(data)
	var matches []Match

	lineno := 0
	for pos := 0; pos < buf.Len(); {
		lineno++
		end := buf.FindByte('\n', pos)
		if end == strview.Npos {
			end = buf.Len()
		}
		line, _ := buf.Substr(pos, end-pos)
		pos = end + 1

		if e.opts.MaxLine > 0 && line.Len() > e.opts.MaxLine {
			logrus.Debugf("Skipping long line %d in %s (%d bytes)", lineno, name, line.Len())
			continue
		}

		text := line
		col0 := 0
		if e.opts.TrimSpace {
			text, col0 = e.trim(line)
		}

		for at := text.Find(e.pattern, 0); at != strview.Npos; at = text.Find(e.pattern, at+1) {
			matches = append(matches, Match{
				File:   name,
				Line:   lineno,
				Column: col0 + at + 1,
				Text:   text.String(),
			})
			if e.pattern.Empty() {
				// 空模式每行至多记一次
				break
			}
		}
	}

	logrus.Debugf("%s: %d matches in %d lines", name, len(matches), lineno)
	return matches
}

// Count 返回data中的命中总数
func (e *Engine) Count(name string, data []byte) int {
	return len(e.Search(name, data))
}

// trim 去除首尾落在trimSet中的字符，返回子视图及其在原行内的起始偏移
func (e *Engine) trim(line strview.View) (strview.View, int) {
	start := line.FindFirstNotOf(e.trimSet, 0)
	if start == strview.Npos {
		return strview.View{}, 0
	}
	end := line.FindLastNotOf(e.trimSet, strview.Npos)
	sub, _ := line.Substr(start, end-start+1)
	return sub, start
}
