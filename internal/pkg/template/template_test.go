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

package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFields(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		wantRes []string
	}{
		{
			name:    "重复占位符去重",
			text:    "{{a}} {{a}} {{b}}",
			wantRes: []string{"a", "b"},
		},
		{
			name:    "没有占位符",
			text:    "plain text",
			wantRes: []string{},
		},
		{
			name:    "大小写敏感",
			text:    "{{Name}} {{name}}",
			wantRes: []string{"Name", "name"},
		},
		{
			name:    "非法字段名不匹配",
			text:    "{{a-b}} {{ c }} {{ok}}",
			wantRes: []string{"ok"},
		},
		{
			name:    "保留首次出现顺序",
			text:    "{{salary}} {{startDate}} {{salary}} {{fte}}",
			wantRes: []string{"salary", "startDate", "fte"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, ExtractFields(tc.text))
		})
	}
}

func TestFill(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		data    map[string]any
		wantRes string
	}{
		{
			name:    "同一字段出现多次",
			text:    "Hi {{name}}, {{name}}!",
			data:    map[string]any{"name": "Sam"},
			wantRes: "Hi Sam, Sam!",
		},
		{
			name:    "未提供的字段原样保留",
			text:    "{{x}}",
			data:    map[string]any{},
			wantRes: "{{x}}",
		},
		{
			name: "部分字段缺失",
			text: "Dear {{candidateName}}, salary {{salary}}",
			data: map[string]any{"salary": 98000},
			wantRes: "Dear {{candidateName}}, salary 98000",
		},
		{
			name:    "字段值包含占位符语法时不做二次替换",
			text:    "{{a}}{{b}}",
			data:    map[string]any{"a": "{{b}}", "b": "B"},
			wantRes: "{{b}}B",
		},
		{
			name:    "非字符串值",
			text:    "FTE: {{fte}}",
			data:    map[string]any{"fte": 0.5},
			wantRes: "FTE: 0.5",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, Fill(tc.text, tc.data))
		})
	}
}
