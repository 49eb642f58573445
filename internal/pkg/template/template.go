// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package template 实现 Offer 通知书里 {{field}} 占位符的提取和填充。
// 两个函数都是纯函数，没有任何副作用。
package template

import (
	"fmt"
	"regexp"
	"strings"
)

// 占位符形如 {{fieldName}}，字段名大小写敏感，只允许 \w。
var placeholderRegexp = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ExtractFields 提取模板文本中所有占位符的字段名，去重，保留首次出现的顺序。
func ExtractFields(text string) []string {
	matches := placeholderRegexp.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	fields := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}
	return fields
}

// Fill 在原始文本上做单遍扫描替换：data 中存在的字段替换为 fmt.Sprint(值)，
// 不存在的占位符原样保留。单遍扫描保证了替换结果与 data 的遍历顺序无关，
// 即使某个字段值本身包含 {{...}} 语法也不会被二次替换。
func Fill(text string, data map[string]any) string {
	if len(data) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range placeholderRegexp.FindAllStringSubmatchIndex(text, -1) {
		name := text[loc[2]:loc[3]]
		val, ok := data[name]
		if !ok {
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(fmt.Sprint(val))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
