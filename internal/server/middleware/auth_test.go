package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"lullaby/internal/pkg/ctxutil"
	"lullaby/internal/pkg/jwt"
)

func newAuthTestRouter(j *jwt.JWT) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(j), func(c *gin.Context) {
		userID, _ := ctxutil.GetUserID(c.Request.Context())
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuth(t *testing.T) {
	Convey("JWT 认证中间件测试", t, func() {
		j := jwt.NewJWT("test-secret", time.Hour)
		router := newAuthTestRouter(j)

		Convey("没有 Authorization 头返回401", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			router.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusUnauthorized)
		})

		Convey("Authorization 头格式错误返回401", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Basic abc123")
			router.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusUnauthorized)
		})

		Convey("无效Token返回401", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer not-a-token")
			router.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusUnauthorized)
		})

		Convey("有效Token放行并注入 user_id", func() {
			token, err := j.GenerateToken("user-123", "alice")
			So(err, ShouldBeNil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldEqual, "user-123")
		})
	})
}
