package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"microblog/db"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index"`
	AuthorID  uint64 `gorm:"index"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
}

const postPreviewLen = 15

// String returns the first 15 characters of the text, the post's
// compact display form. Value receiver so templates can call it on
// range elements.
func (p Post) String() string {
	runes := []rune(p.Text)
	if len(runes) <= postPreviewLen {
		return p.Text
	}
	return string(runes[:postPreviewLen])
}

func validatePost(text string, groupID *uint64) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if groupID != nil && !groupExists(*groupID) {
		return ErrUnknownGroup
	}
	return nil
}

func PostCreate(author *User, text string, groupID *uint64) (p Post, err error) {
	if err = validatePost(text, groupID); err != nil {
		return p, err
	}
	p.AuthorID = author.ID
	p.GroupID = groupID
	p.Text = text
	p.CreatedAt = time.Now().Unix()
	return p, db.Instance.Create(&p).Error
}

// Update rewrites text and group assignment in place. Author, id and
// creation time never change.
func (p *Post) Update(text string, groupID *uint64) error {
	if err := validatePost(text, groupID); err != nil {
		return err
	}
	p.Text = text
	p.GroupID = groupID
	return db.Instance.Model(p).Select("text", "group_id").Updates(map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}).Error
}

// PostByID returns nil without error when no such post exists.
func PostByID(id uint64) (*Post, error) {
	var p Post
	err := db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Listings are newest-first; id breaks ties so same-second posts keep
// insertion order reversed.
func postListing(tx *gorm.DB) ([]Post, error) {
	var posts []Post
	err := tx.Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func AllPosts() ([]Post, error) {
	return postListing(db.Instance)
}

func PostsByGroup(groupID uint64) ([]Post, error) {
	return postListing(db.Instance.Where("group_id = ?", groupID))
}

func PostsByAuthor(authorID uint64) ([]Post, error) {
	return postListing(db.Instance.Where("author_id = ?", authorID))
}

// FeedPosts returns posts whose authors the given user follows.
func FeedPosts(followerID uint64) ([]Post, error) {
	return postListing(db.Instance.
		Where("author_id IN (?)", db.Instance.Model(&Follow{}).
			Select("followed_id").Where("follower_id = ?", followerID)))
}

func PostCount() int64 {
	var count int64
	db.Instance.Model(&Post{}).Count(&count)
	return count
}
