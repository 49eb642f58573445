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

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPosition_IsOpen(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(1704067200000)
	day := int64(24 * time.Hour / time.Millisecond)
	testCases := []struct {
		name string
		pos  Position
		want bool
	}{
		{
			name: "Open且在发布窗口内",
			pos: Position{
				Status:           StatusOpen,
				PostingStartDate: now.UnixMilli() - day,
				PostingEndDate:   now.UnixMilli() + day,
			},
			want: true,
		},
		{
			name: "窗口内但状态已关闭",
			pos: Position{
				Status:           StatusClosed,
				PostingStartDate: now.UnixMilli() - day,
				PostingEndDate:   now.UnixMilli() + day,
			},
			want: false,
		},
		{
			name: "窗口内但还是草稿",
			pos: Position{
				Status:           StatusDraft,
				PostingStartDate: now.UnixMilli() - day,
				PostingEndDate:   now.UnixMilli() + day,
			},
			want: false,
		},
		{
			name: "Open但发布窗口还没开始",
			pos: Position{
				Status:           StatusOpen,
				PostingStartDate: now.UnixMilli() + day,
				PostingEndDate:   now.UnixMilli() + 2*day,
			},
			want: false,
		},
		{
			name: "Open但发布窗口已结束",
			pos: Position{
				Status:           StatusOpen,
				PostingStartDate: now.UnixMilli() - 2*day,
				PostingEndDate:   now.UnixMilli() - day,
			},
			want: false,
		},
		{
			name: "窗口边界当天仍然可见",
			pos: Position{
				Status:           StatusOpen,
				PostingStartDate: now.UnixMilli(),
				PostingEndDate:   now.UnixMilli(),
			},
			want: true,
		},
		{
			name: "Open但没有设置发布窗口",
			pos: Position{
				Status: StatusOpen,
			},
			want: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.pos.IsOpen(now))
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusDraft.IsValid())
	assert.True(t, StatusOpen.IsValid())
	assert.True(t, StatusClosed.IsValid())
	assert.False(t, Status("Archived").IsValid())
	assert.False(t, Status("").IsValid())
}
