package models

import (
	"strings"
	"time"

	"microblog/db"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	PostID    uint64 `gorm:"index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

func CommentCreate(post *Post, author *User, text string) (c Comment, err error) {
	if strings.TrimSpace(text) == "" {
		return c, ErrEmptyText
	}
	c.PostID = post.ID
	c.AuthorID = author.ID
	c.Text = text
	c.CreatedAt = time.Now().Unix()
	return c, db.Instance.Create(&c).Error
}

// CommentsForPost returns the post's thread oldest-first.
func CommentsForPost(postID uint64) ([]Comment, error) {
	var comments []Comment
	err := db.Instance.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").Find(&comments).Error
	return comments, err
}
