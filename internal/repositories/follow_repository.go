package repositories

import (
	"github.com/socialfeed-api/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository is the follow edge set: membership checks, a toggle that
// flips one edge per call, and listings of either side of the relation.
type FollowRepository interface {
	ToggleFollow(followerID, followingID uint) (bool, error)
	IsFollowing(followerID, followingID uint) (bool, error)
	GetFollowers(profileID uint) ([]models.ProfileRef, error)
	GetFollowing(profileID uint) ([]models.ProfileRef, error)
	GetFollowersCount(profileID uint) (int64, error)
	GetFollowingCount(profileID uint) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// ToggleFollow removes the edge follower->following if present, otherwise
// adds it. Runs in one transaction so two concurrent toggles from a
// double-submission cannot both insert. Returns the resulting state.
func (r *PostgresFollowRepository) ToggleFollow(followerID, followingID uint) (bool, error) {
	var following bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			following = false
			return nil
		}
		follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
		if err := tx.Create(follow).Error; err != nil {
			return err
		}
		following = true
		return nil
	})
	return following, err
}

// IsFollowing checks whether the edge follower->following exists
func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", followerID, followingID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers lists the profiles following the given profile
func (r *PostgresFollowRepository) GetFollowers(profileID uint) ([]models.ProfileRef, error) {
	var refs []models.ProfileRef
	err := r.db.Table("profiles").
		Select("profiles.id, profiles.username").
		Where("profiles.id IN (?)",
			r.db.Table("follows").Select("follower_id").Where("following_id = ?", profileID),
		).
		Scan(&refs).Error
	return refs, err
}

// GetFollowing lists the profiles the given profile follows
func (r *PostgresFollowRepository) GetFollowing(profileID uint) ([]models.ProfileRef, error) {
	var refs []models.ProfileRef
	err := r.db.Table("profiles").
		Select("profiles.id, profiles.username").
		Where("profiles.id IN (?)",
			r.db.Table("follows").Select("following_id").Where("follower_id = ?", profileID),
		).
		Scan(&refs).Error
	return refs, err
}

// GetFollowersCount counts followers of a profile
func (r *PostgresFollowRepository) GetFollowersCount(profileID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("following_id = ?", profileID).Count(&count).Error
	return count, err
}

// GetFollowingCount counts profiles a profile follows
func (r *PostgresFollowRepository) GetFollowingCount(profileID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", profileID).Count(&count).Error
	return count, err
}
