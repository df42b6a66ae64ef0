package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"microblog/auth"
	"microblog/logger"
	"microblog/models"
)

type LoginView struct {
	Next     string
	Username string
	Errors   FieldErrors
}

type SignupView struct {
	Username string
	Name     string
	Errors   FieldErrors
}

// safeNext only accepts local paths as a post-login destination.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.HTML(http.StatusOK, "login.tmpl", LoginView{Next: c.Query("next")})
		return
	}
	username := c.PostForm("username")
	next := safeNext(c.PostForm("next"))
	user, ok := models.UserLogin(username, c.PostForm("password"))
	if !ok {
		c.HTML(http.StatusOK, "login.tmpl", LoginView{
			Next:     c.PostForm("next"),
			Username: username,
			Errors:   FieldErrors{"username": "Wrong username or password."},
		})
		return
	}
	auth.LoadSession(c).LogInUser(&user)
	logger.L.Info("user logged in", zap.String("user", user.Username))
	redirectTo(c, next)
}

func Signup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.HTML(http.StatusOK, "signup.tmpl", SignupView{})
		return
	}
	username := strings.TrimSpace(c.PostForm("username"))
	name := strings.TrimSpace(c.PostForm("name"))
	password := c.PostForm("password")

	errs := FieldErrors{}
	if username == "" {
		errs["username"] = "Username is required."
	}
	if password == "" {
		errs["password"] = "Password is required."
	}
	if username != "" {
		existing, err := models.UserByUsername(username)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if existing != nil {
			errs["username"] = "Username is taken."
		}
	}
	if errs.Any() {
		c.HTML(http.StatusOK, "signup.tmpl", SignupView{
			Username: username, Name: name, Errors: errs,
		})
		return
	}
	user, err := models.UserCreate(username, name, password)
	if err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", SignupView{
			Username: username, Name: name,
			Errors: FieldErrors{"username": "Could not create the account."},
		})
		return
	}
	auth.LoadSession(c).LogInUser(&user)
	logger.L.Info("user signed up", zap.String("user", user.Username))
	redirectTo(c, "/")
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	redirectTo(c, "/")
}
