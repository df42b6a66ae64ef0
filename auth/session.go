package auth

import (
	"microblog/db"
	"microblog/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LogInUser(u *models.User) {
	s.Set(userIdKey, u.ID)
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

// User loads the acting identity. A nil result is the anonymous user.
func (s *Session) User() *models.User {
	id, ok := s.Get(userIdKey).(uint64)
	if !ok || id == 0 {
		return nil
	}
	var user models.User
	if db.Instance.First(&user, id).Error != nil {
		return nil
	}
	return &user
}
