package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/hireflow/internal/pkg/dctx"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	active map[int64]bool
}

func (f *fakeVerifier) Verify(_ context.Context, id int64) error {
	if f.active[id] {
		return nil
	}
	return errors.New("学区不存在或已停用")
}

func TestCheckDistrict(t *testing.T) {
	verifier := &fakeVerifier{active: map[int64]bool{1: true}}
	testCases := []struct {
		name      string
		wantCode  int
		before    func(t *testing.T, ctx *gin.Context)
		afterFunc func(t *testing.T, ctx *gin.Context)
	}{
		{
			name:     "合法学区",
			wantCode: 200,
			before: func(t *testing.T, ctx *gin.Context) {
				header := make(http.Header)
				header.Set(districtIDHeader, "1")
				ctx.Request = httptest.NewRequest(http.MethodPost, "/positions/save", nil)
				ctx.Request.Header = header
			},
			afterFunc: func(t *testing.T, ctx *gin.Context) {
				c := ctx.Request.Context()
				res, ok := dctx.DistrictFromCtx(c)
				require.True(t, ok)
				assert.Equal(t, int64(1), res)
			},
		},
		{
			name:     "缺少学区请求头",
			wantCode: 400,
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Request = httptest.NewRequest(http.MethodPost, "/positions/save", nil)
				ctx.Request.Header = make(http.Header)
			},
			afterFunc: func(t *testing.T, ctx *gin.Context) {},
		},
		{
			name:     "学区ID不是数字",
			wantCode: 400,
			before: func(t *testing.T, ctx *gin.Context) {
				header := make(http.Header)
				header.Set(districtIDHeader, "abc")
				ctx.Request = httptest.NewRequest(http.MethodPost, "/positions/save", nil)
				ctx.Request.Header = header
			},
			afterFunc: func(t *testing.T, ctx *gin.Context) {},
		},
		{
			name:     "学区不存在",
			wantCode: 400,
			before: func(t *testing.T, ctx *gin.Context) {
				header := make(http.Header)
				header.Set(districtIDHeader, "99")
				ctx.Request = httptest.NewRequest(http.MethodPost, "/positions/save", nil)
				ctx.Request.Header = header
			},
			afterFunc: func(t *testing.T, ctx *gin.Context) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.before(t, c)
			builder := NewCheckDistrictBuilder(verifier)
			hdl := builder.Build()
			hdl(c)
			assert.Equal(t, tc.wantCode, c.Writer.Status())
			tc.afterFunc(t, c)
		})
	}
}
