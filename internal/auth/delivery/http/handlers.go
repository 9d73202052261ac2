package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/internal/auth"
	"github.com/KN-gho/timebudget/internal/middleware"
	"github.com/KN-gho/timebudget/pkg/response"
)

// cookieMaxAge matches the session TTL.
const cookieMaxAge = 24 * 60 * 60

// Login godoc
// @Summary     Start Google login
// @Description Returns the Google consent page URL with a one-time state.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} loginResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.LoginURL(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoginURL: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Callback godoc
// @Summary     OAuth callback
// @Description Exchanges the authorization code and issues a session token, also set as a cookie.
// @Tags        Auth
// @Produce     json
// @Param       code  query string true "Authorization code"
// @Param       state query string true "State echoed from login"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "State mismatch"
// @Failure     502 {object} response.Resp "Google login failed"
// @Router      /api/v1/auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Callback(ctx, auth.CallbackInput{
		Code:  c.Query("code"),
		State: c.Query("state"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Callback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.SetCookie(middleware.SessionCookie, output.Session.Token, cookieMaxAge, "/", "", false, true)
	response.OK(c, h.newSessionResp(output))
}

// Me godoc
// @Summary     Current session
// @Description Returns the session for the presented token.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Me(ctx, requestToken(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Logout godoc
// @Summary     Logout
// @Description Revokes the presented session token and clears the cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx, requestToken(c)); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	response.OK(c, nil)
}

// requestToken pulls the session token from the Authorization bearer
// header or the session cookie.
func requestToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		return cookie
	}
	return ""
}
