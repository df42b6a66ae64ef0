package models

import (
	"testing"

	"gorm.io/gorm"

	"microblog/db"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	if db.Instance == nil {
		db.Init()
		Init()
	}
	for _, model := range []interface{}{&Comment{}, &Follow{}, &Post{}, &Group{}, &User{}} {
		if err := db.Instance.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			t.Fatalf("failed to clean up table for %T: %v", model, err)
		}
	}
}

func mustUser(t *testing.T, username string) *User {
	t.Helper()
	u, err := UserCreate(username, username, "password-1")
	if err != nil {
		t.Fatalf("UserCreate(%q): %v", username, err)
	}
	return &u
}

func mustGroup(t *testing.T, title, slug string) *Group {
	t.Helper()
	g, err := GroupCreate(title, slug, "a test group")
	if err != nil {
		t.Fatalf("GroupCreate(%q): %v", slug, err)
	}
	return &g
}

func mustPost(t *testing.T, author *User, text string, groupID *uint64) *Post {
	t.Helper()
	p, err := PostCreate(author, text, groupID)
	if err != nil {
		t.Fatalf("PostCreate(%q): %v", text, err)
	}
	return &p
}
