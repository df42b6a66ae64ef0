package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"microblog/auth"
	"microblog/models"
)

// FieldErrors maps a form field name to its validation message. A form
// that produced any is re-rendered; nothing is written to the database.
type FieldErrors map[string]string

func (fe FieldErrors) Any() bool {
	return len(fe) > 0
}

// currentUser is the acting identity on ungated routes; nil when
// anonymous.
func currentUser(c *gin.Context) *models.User {
	return auth.LoadSession(c).User()
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func notFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

func redirectTo(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

func postDetailPath(postID uint64) string {
	return "/posts/" + strconv.FormatUint(postID, 10) + "/"
}

func profilePath(username string) string {
	return "/profile/" + username + "/"
}

// pathPostID parses the :id route parameter. ok is false for garbage,
// which callers surface as not-found.
func pathPostID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// parseGroupID turns the submitted group selector value into an
// optional group reference. Empty means no group.
func parseGroupID(raw string) (*uint64, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, false
	}
	return &id, true
}

func fieldErrorsFor(err error) FieldErrors {
	switch err {
	case models.ErrEmptyText:
		return FieldErrors{"text": "Text must not be empty."}
	case models.ErrUnknownGroup:
		return FieldErrors{"group": "Pick an existing group."}
	}
	return FieldErrors{"text": "Could not save the post."}
}
