package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"microblog/models"
)

// LoginPath is where anonymous callers of gated routes are sent,
// carrying the originally requested path in the next parameter.
const LoginPath = "/auth/login/"

// HandlerFunc runs with the session user already loaded and known to
// be authenticated.
type HandlerFunc func(c *gin.Context, user *models.User)

// Router wraps the engine adding the auth gate + user pre-loading.
// Finer checks (post authorship) stay in the handlers, which have the
// resource at hand.
type Router struct {
	Base *gin.Engine
}

func LoginRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.Path))
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	user := LoadSession(c).User()
	if !user.Authenticated() {
		LoginRedirect(c)
		return
	}
	handler(c, user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
