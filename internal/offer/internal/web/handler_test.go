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

package web

import (
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/offer/internal/errs"
	"github.com/ecodeclub/hireflow/internal/offer/internal/service"
	offermocks "github.com/ecodeclub/hireflow/internal/offer/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 接受接口的错误码映射。过期和一般状态冲突分开给码：
// 605004 刷新后可能还有机会，605005 是终态，客户端不该重试。
func TestHandler_Accept_ErrorCodes(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		svcErr   error
		wantCode int
	}{
		{name: "已过期_终态不可重试", svcErr: service.ErrOfferExpired, wantCode: errs.OfferExpired.Code},
		{name: "状态冲突", svcErr: service.ErrStatusConflict, wantCode: errs.StatusConflict.Code},
		{name: "不存在", svcErr: service.ErrOfferNotFound, wantCode: errs.OfferNotFound.Code},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := offermocks.NewMockService(gomock.NewController(t))
			svc.EXPECT().Accept(gomock.Any(), "sn-123").Return(tc.svcErr)
			h := NewHandler(svc)

			gctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			res, err := h.Accept(&ginx.Context{Context: gctx}, SNReq{SN: "sn-123"})
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
}

func TestHandler_Accept_OK(t *testing.T) {
	t.Parallel()
	svc := offermocks.NewMockService(gomock.NewController(t))
	svc.EXPECT().Accept(gomock.Any(), "sn-123").Return(nil)
	h := NewHandler(svc)

	gctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	res, err := h.Accept(&ginx.Context{Context: gctx}, SNReq{SN: "sn-123"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Code)
}
