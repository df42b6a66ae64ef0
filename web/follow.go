package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/config"
	"microblog/models"
	"microblog/paginator"
)

type FeedView struct {
	Page paginator.Page[models.Post]
}

// FollowIndex is the personalized feed: posts by authors the user
// follows, newest first.
func FollowIndex(c *gin.Context, user *models.User) {
	posts, err := models.FeedPosts(user.ID)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "follow.tmpl", FeedView{
		Page: paginator.Paginate(posts, config.PAGE_SIZE, c.Query("page")),
	})
}

func profileForFollow(c *gin.Context) *models.User {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil
	}
	if author == nil {
		notFound(c)
		return nil
	}
	return author
}

func ProfileFollow(c *gin.Context, user *models.User) {
	author := profileForFollow(c)
	if author == nil {
		return
	}
	if err := models.FollowUser(user, author); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	redirectTo(c, profilePath(author.Username))
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author := profileForFollow(c)
	if author == nil {
		return
	}
	if err := models.UnfollowUser(user, author); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	redirectTo(c, profilePath(author.Username))
}
