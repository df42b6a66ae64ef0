package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"microblog/logger"
	"microblog/models"
)

type PostDetailView struct {
	Post     models.Post
	Comments []models.Comment
	CanEdit  bool
}

// PostFormView backs both the create and the pre-filled edit form.
type PostFormView struct {
	IsEdit  bool
	PostID  uint64
	Text    string
	GroupID string // selected option value, empty for none
	Groups  []models.Group
	Errors  FieldErrors
}

// PostDetail shows one post with its comment thread, oldest comment
// first.
func PostDetail(c *gin.Context) {
	id, ok := pathPostID(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if post == nil {
		notFound(c)
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", PostDetailView{
		Post:     *post,
		Comments: comments,
		CanEdit:  currentUser(c).CanEdit(post),
	})
}

func renderPostForm(c *gin.Context, view PostFormView) {
	groups, err := models.AllGroups()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	view.Groups = groups
	c.HTML(http.StatusOK, "create_post.tmpl", view)
}

// PostCreate renders the create form and handles its submission. The
// route is gated, so user is always authenticated here.
func PostCreate(c *gin.Context, user *models.User) {
	if c.Request.Method != http.MethodPost {
		renderPostForm(c, PostFormView{})
		return
	}
	text := c.PostForm("text")
	rawGroup := c.PostForm("group")
	groupID, ok := parseGroupID(rawGroup)
	if !ok {
		renderPostForm(c, PostFormView{Text: text, GroupID: rawGroup,
			Errors: FieldErrors{"group": "Pick an existing group."}})
		return
	}
	post, err := models.PostCreate(user, text, groupID)
	if err != nil {
		renderPostForm(c, PostFormView{Text: text, GroupID: rawGroup,
			Errors: fieldErrorsFor(err)})
		return
	}
	logger.L.Info("post created",
		zap.Uint64("post", post.ID), zap.String("author", user.Username))
	redirectTo(c, profilePath(user.Username))
}

// PostEdit lets the author change text and group. Anyone else lands
// back on the detail page.
func PostEdit(c *gin.Context, user *models.User) {
	id, ok := pathPostID(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if post == nil {
		notFound(c)
		return
	}
	if !user.CanEdit(post) {
		redirectTo(c, postDetailPath(post.ID))
		return
	}
	if c.Request.Method != http.MethodPost {
		view := PostFormView{IsEdit: true, PostID: post.ID, Text: post.Text}
		if post.GroupID != nil {
			view.GroupID = formatID(*post.GroupID)
		}
		renderPostForm(c, view)
		return
	}
	text := c.PostForm("text")
	rawGroup := c.PostForm("group")
	groupID, ok := parseGroupID(rawGroup)
	if !ok {
		renderPostForm(c, PostFormView{IsEdit: true, PostID: post.ID,
			Text: text, GroupID: rawGroup,
			Errors: FieldErrors{"group": "Pick an existing group."}})
		return
	}
	if err := post.Update(text, groupID); err != nil {
		renderPostForm(c, PostFormView{IsEdit: true, PostID: post.ID,
			Text: text, GroupID: rawGroup, Errors: fieldErrorsFor(err)})
		return
	}
	redirectTo(c, postDetailPath(post.ID))
}

// AddComment appends a comment and returns to the detail page. Once
// the auth gate passes the route always ends in that redirect.
func AddComment(c *gin.Context, user *models.User) {
	id, ok := pathPostID(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if post == nil {
		notFound(c)
		return
	}
	if c.Request.Method == http.MethodPost {
		if _, err := models.CommentCreate(post, user, c.PostForm("text")); err != nil {
			logger.L.Debug("comment rejected",
				zap.Uint64("post", post.ID), zap.Error(err))
		}
	}
	redirectTo(c, postDetailPath(post.ID))
}
