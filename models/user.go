package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"microblog/db"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Name      string `gorm:"type:varchar(150)"`
	Password  string `gorm:"type:varchar(128)"` // bcrypt hash
	Posts     []Post `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (u User) String() string {
	return u.Username
}

func UserCreate(username, name, plainTextPassword string) (u User, err error) {
	if username == "" || plainTextPassword == "" {
		return u, ErrEmptyField
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return u, err
	}
	u.Username = username
	u.Name = name
	u.Password = string(hash)
	u.CreatedAt = time.Now().Unix()
	return u, db.Instance.Create(&u).Error
}

// UserByUsername returns nil without error when no such user exists.
func UserByUsername(username string) (*User, error) {
	var u User
	err := db.Instance.First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	if db.Instance.First(&u, "username = ?", username).Error != nil {
		return User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) != nil {
		return User{}, false
	}
	return u, true
}

func UserByID(id uint64) (u User, ok bool) {
	if id == 0 {
		return u, false
	}
	if db.Instance.First(&u, id).Error != nil {
		return User{}, false
	}
	return u, true
}
