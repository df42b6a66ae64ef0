package web

import (
	"path/filepath"
	"runtime"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"

	"microblog/auth"
	"microblog/config"
	"microblog/db"
	"microblog/utils"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

// templatesGlob resolves the template dir from the source location so
// tests can build engines from any package directory.
func templatesGlob() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filepath.Dir(b)), "templates", "*.tmpl")
}

// BuildRouter assembles the engine: middleware, session store,
// templates and every route. db.Init and models.Init must have run.
func BuildRouter() *gin.Engine {
	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	router.LoadHTMLGlob(templatesGlob())

	key := config.SESSION_KEY
	if key == "" {
		key = utils.RandKey(32)
	}
	store := gormsessions.NewStore(db.Instance, true, []byte(key))
	store.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, store))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	// Public pages
	router.GET("/", Index)
	router.GET("/group/:slug/", GroupListing)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)
	router.GET(auth.LoginPath, Login)
	router.POST(auth.LoginPath, Login)
	router.GET("/auth/signup/", Signup)
	router.POST("/auth/signup/", Signup)
	router.POST("/auth/logout/", Logout)

	// Gated pages: anonymous callers get the login redirect
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", PostCreate)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:id/edit/", PostEdit)
	authRouter.POST("/posts/:id/edit/", PostEdit)
	authRouter.GET("/posts/:id/comment/", AddComment)
	authRouter.POST("/posts/:id/comment/", AddComment)
	authRouter.GET("/follow/", FollowIndex)
	authRouter.POST("/profile/:username/follow/", ProfileFollow)
	authRouter.POST("/profile/:username/unfollow/", ProfileUnfollow)

	return router
}
