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

package dctx

import "context"

type districtContextType string

var (
	districtCtxKey districtContextType = "district"
)

// DistrictFromCtx 从 ctx 中取出当前请求的学区ID。
// 所有需要租户隔离的操作都必须显式传递这个ID，不存在隐式的全局默认值。
func DistrictFromCtx(ctx context.Context) (int64, bool) {
	val := ctx.Value(districtCtxKey)
	if val == nil {
		return 0, false
	}
	v, ok := val.(int64)
	return v, ok
}

func CtxWithDistrict(ctx context.Context, district int64) context.Context {
	return context.WithValue(ctx, districtCtxKey, district)
}
