package handler

import (
	"github.com/gin-gonic/gin"
)

// NewEngine returns a bare engine; middleware is attached by NewRouter.
// Proxy headers are ignored so the rate limiter keys on the peer address.
func NewEngine() (*gin.Engine, error) {
	engine := gin.New()
	engine.ContextWithFallback = true
	engine.HandleMethodNotAllowed = true
	if err := engine.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	return engine, nil
}
