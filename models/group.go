package models

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"microblog/db"
)

// Group is a named section posts can be filed under. The slug is the
// group's external key and never changes once created.
type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(100);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func (g Group) String() string {
	return g.Title
}

// GroupCreate is an administrative action; groups are never created
// through the public forms.
func GroupCreate(title, slug, description string) (g Group, err error) {
	if title == "" || slug == "" {
		return g, ErrEmptyField
	}
	g.Title = title
	g.Slug = slug
	g.Description = description
	g.CreatedAt = time.Now().Unix()
	return g, db.Instance.Create(&g).Error
}

// GroupBySlug returns nil without error when no such group exists.
func GroupBySlug(slug string) (*Group, error) {
	var g Group
	err := db.Instance.First(&g, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// AllGroups lists every group, oldest first, for the post form selector.
func AllGroups() ([]Group, error) {
	var groups []Group
	err := db.Instance.Order("created_at ASC, id ASC").Find(&groups).Error
	return groups, err
}

func groupExists(id uint64) bool {
	var count int64
	db.Instance.Model(&Group{}).Where("id = ?", id).Count(&count)
	return count > 0
}
