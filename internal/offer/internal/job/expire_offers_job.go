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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/hireflow/internal/offer/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ExpireOffersJob)(nil)

// ExpireOffersJob 兜底巡检：把过了截止日但一直没人访问、
// 还停留在Pending的Offer批量落库为Expired。
type ExpireOffersJob struct {
	svc     service.Service
	limit   int
	timeout time.Duration
}

func NewExpireOffersJob(svc service.Service, limit int, timeout time.Duration) *ExpireOffersJob {
	return &ExpireOffersJob{svc: svc, limit: limit, timeout: timeout}
}

func (e *ExpireOffersJob) Name() string {
	return "ExpireOffersJob"
}

func (e *ExpireOffersJob) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, e.timeout)
	defer cancelFunc()
	deadline := time.Now().UnixMilli()

	for {
		cnt, err := e.svc.ExpireOffers(ctx, deadline, e.limit)
		if err != nil {
			return fmt.Errorf("过期Offer巡检失败: %w", err)
		}
		if cnt < e.limit {
			break
		}
	}
	return nil
}
