package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookify/internal/auth"
)

type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type LoginPageResponse struct {
	AuthFailed bool   `json:"authFailed"`
	Message    string `json:"message,omitempty"`
}

type AuthHandler struct {
	verifier auth.CredentialVerifier
	tokens   *auth.TokenManager
	cookies  auth.Cookies
	logger   *slog.Logger
}

func NewAuthHandler(verifier auth.CredentialVerifier, tokens *auth.TokenManager, cookies auth.Cookies, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{verifier: verifier, tokens: tokens, cookies: cookies, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET(auth.LoginPath, h.LoginPage)
	r.POST(auth.LoginPath, h.Login)
}

func (h *AuthHandler) RegisterDashboardRoutes(dashboard *gin.RouterGroup) {
	dashboard.GET("/logout", h.Logout)
}

// LoginPage godoc
// @Summary      Login page state
// @Tags         auth
// @Produce      json
// @Param        authFailed  query     bool  false  "Set after a rejected login"
// @Success      200         {object}  LoginPageResponse
// @Router       /auth/login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	resp := LoginPageResponse{AuthFailed: c.Query("authFailed") == "true"}
	if resp.AuthFailed {
		resp.Message = "Invalid username or password"
	}
	c.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary      Log in
// @Description  On success sets the session cookie and redirects to the dashboard.
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Param        payload  body  LoginRequest  true  "Credentials"
// @Success      303  "Redirect to /dashboard, or back to the login page on failure"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.rejectLogin(c)
		return
	}

	id, ok := h.verifier.Verify(req.Username, req.Password)
	if !ok {
		h.logger.WarnContext(c.Request.Context(), "login rejected", "client_ip", c.ClientIP())
		h.rejectLogin(c)
		return
	}

	token, err := h.tokens.Issue(*id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.cookies.Set(c, token, int(h.tokens.TTL().Seconds()))
	h.logger.InfoContext(c.Request.Context(), "admin logged in", "username", id.Username)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) rejectLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, auth.LoginPath+"?authFailed=true")
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Success      303  "Redirect to /auth/login"
// @Router       /dashboard/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	c.Redirect(http.StatusSeeOther, auth.LoginPath)
}
