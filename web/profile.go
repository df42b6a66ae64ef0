package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/auth"
	"microblog/config"
	"microblog/models"
	"microblog/paginator"
)

type ProfileView struct {
	Author    models.User
	Page      paginator.Page[models.Post]
	Following bool // viewer follows this author
	IsSelf    bool
}

// Profile lists one author's posts, newest first. Unknown usernames
// are a 404.
func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if author == nil {
		notFound(c)
		return
	}
	posts, err := models.PostsByAuthor(author.ID)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	viewer := auth.LoadSession(c).User()
	c.HTML(http.StatusOK, "profile.tmpl", ProfileView{
		Author:    *author,
		Page:      paginator.Paginate(posts, config.PAGE_SIZE, c.Query("page")),
		Following: models.IsFollowing(viewer, author),
		IsSelf:    viewer.Authenticated() && viewer.ID == author.ID,
	})
}
