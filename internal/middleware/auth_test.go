package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/internal/middleware"
	"github.com/KN-gho/timebudget/internal/model"
	"github.com/KN-gho/timebudget/pkg/log"
)

type stubValidator struct {
	token string
	sess  model.Session
}

func (s stubValidator) Validate(token string) (model.Session, bool) {
	if token != "" && token == s.token {
		return s.sess, true
	}
	return model.Session{}, false
}

func newRouter(v stubValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), v)

	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sess := c.MustGet(middleware.SessionKey).(model.Session)
		c.String(http.StatusOK, sess.UserID)
	})
	return r
}

func TestAuthBearerHeader(t *testing.T) {
	r := newRouter(stubValidator{token: "tok-1", sess: model.Session{Token: "tok-1", UserID: "user-1"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "user-1" {
		t.Errorf("body = %q, want session user id", w.Body.String())
	}
}

func TestAuthSessionCookie(t *testing.T) {
	r := newRouter(stubValidator{token: "tok-1", sess: model.Session{Token: "tok-1", UserID: "user-1"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok-1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAuthRejects(t *testing.T) {
	r := newRouter(stubValidator{token: "tok-1"})

	cases := []struct {
		name  string
		setup func(*http.Request)
	}{
		{"no credentials", func(*http.Request) {}},
		{"wrong token", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer wrong")
		}},
		{"malformed header", func(req *http.Request) {
			req.Header.Set("Authorization", "tok-1")
		}},
		{"stale cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "stale"})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}
