package repositories

import (
	"github.com/socialfeed-api/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository is the like edge set between profiles and posts
type LikeRepository interface {
	ToggleLike(profileID, postID uint) (bool, error)
	HasLiked(profileID, postID uint) (bool, error)
	GetLikesCountByPostID(postID uint) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// ToggleLike removes the like edge if present, otherwise adds it, in one
// transaction. Returns true when the post ends up liked.
func (r *PostgresLikeRepository) ToggleLike(profileID, postID uint) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("profile_id = ? AND post_id = ?", profileID, postID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}
		like := &models.Like{ProfileID: profileID, PostID: postID}
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// HasLiked checks if a profile has liked a specific post
func (r *PostgresLikeRepository) HasLiked(profileID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("profile_id = ? AND post_id = ?", profileID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCountByPostID counts likes for a post without fetching members
func (r *PostgresLikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
