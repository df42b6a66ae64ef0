package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/config"
	"microblog/models"
	"microblog/paginator"
)

type GroupView struct {
	Group models.Group
	Page  paginator.Page[models.Post]
}

// GroupListing lists one group's posts, newest first. Unknown slugs
// are a 404.
func GroupListing(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if group == nil {
		notFound(c)
		return
	}
	posts, err := models.PostsByGroup(group.ID)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "group_list.tmpl", GroupView{
		Group: *group,
		Page:  paginator.Paginate(posts, config.PAGE_SIZE, c.Query("page")),
	})
}
