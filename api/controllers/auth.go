package controllers

import (
	"fmt"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
)

// AuthController forwards every /api/auth request to the external auth
// provider untouched. No custom logic lives here.
type AuthController struct {
	target *url.URL
	proxy  *httputil.ReverseProxy
}

func NewAuthController(baseURL string) (*AuthController, error) {
	target, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid auth provider url %q: %w", baseURL, err)
	}
	return &AuthController{
		target: target,
		proxy:  httputil.NewSingleHostReverseProxy(target),
	}, nil
}

func (c *AuthController) RegisterRoutes(engine *gin.Engine) {
	engine.Any("/api/auth/*path", c.forward)
}

func (c *AuthController) forward(g *gin.Context) {
	g.Request.Host = c.target.Host
	c.proxy.ServeHTTP(g.Writer, g.Request)
}
