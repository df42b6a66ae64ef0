package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/config"
	"microblog/models"
	"microblog/paginator"
)

type IndexView struct {
	Page paginator.Page[models.Post]
}

// Index lists every post on the site, newest first.
func Index(c *gin.Context) {
	posts, err := models.AllPosts()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", IndexView{
		Page: paginator.Paginate(posts, config.PAGE_SIZE, c.Query("page")),
	})
}
