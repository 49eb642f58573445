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
	"testing"
	"time"

	offermocks "github.com/ecodeclub/hireflow/internal/offer/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExpireOffersJob_Run(t *testing.T) {
	t.Parallel()

	t.Run("整批打满_继续下一批", func(t *testing.T) {
		t.Parallel()
		svc := offermocks.NewMockService(gomock.NewController(t))
		// 第一批刚好打满limit，说明可能还有存量，再扫一批
		first := svc.EXPECT().ExpireOffers(gomock.Any(), gomock.Any(), 10).Return(10, nil)
		svc.EXPECT().ExpireOffers(gomock.Any(), gomock.Any(), 10).Return(3, nil).After(first)

		j := NewExpireOffersJob(svc, 10, time.Minute)
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("巡检超时可控", func(t *testing.T) {
		t.Parallel()
		svc := offermocks.NewMockService(gomock.NewController(t))
		svc.EXPECT().ExpireOffers(gomock.Any(), gomock.Any(), 10).DoAndReturn(
			func(ctx context.Context, _ int64, _ int) (int, error) {
				// 超时上限来自调用方传入的ctx
				_, ok := ctx.Deadline()
				assert.True(t, ok)
				return 0, nil
			})

		j := NewExpireOffersJob(svc, 10, time.Minute)
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("批次出错_带上下文返回", func(t *testing.T) {
		t.Parallel()
		svc := offermocks.NewMockService(gomock.NewController(t))
		svc.EXPECT().ExpireOffers(gomock.Any(), gomock.Any(), 10).Return(0, context.DeadlineExceeded)

		j := NewExpireOffersJob(svc, 10, time.Minute)
		err := j.Run(context.Background())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
