package models

import (
	"time"

	"gorm.io/gorm/clause"

	"microblog/db"
)

// Follow is a directed follower -> followed edge, unique per pair.
type Follow struct {
	ID         uint64 `gorm:"primaryKey"`
	CreatedAt  int64
	FollowerID uint64 `gorm:"index:uniq_follow,priority:1,unique"`
	Follower   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FollowedID uint64 `gorm:"index:uniq_follow,priority:2,unique"`
	Followed   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowUser is idempotent; following yourself is a no-op.
func FollowUser(follower, followed *User) error {
	if follower.ID == followed.ID {
		return nil
	}
	f := Follow{
		FollowerID: follower.ID,
		FollowedID: followed.ID,
		CreatedAt:  time.Now().Unix(),
	}
	return db.Instance.Clauses(clause.OnConflict{DoNothing: true}).Create(&f).Error
}

func UnfollowUser(follower, followed *User) error {
	return db.Instance.
		Where("follower_id = ? AND followed_id = ?", follower.ID, followed.ID).
		Delete(&Follow{}).Error
}

func IsFollowing(follower *User, followed *User) bool {
	if follower == nil || follower.ID == 0 {
		return false
	}
	var count int64
	db.Instance.Model(&Follow{}).
		Where("follower_id = ? AND followed_id = ?", follower.ID, followed.ID).
		Count(&count)
	return count > 0
}
