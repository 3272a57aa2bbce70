package repositories

import (
	"errors"

	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user account operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByFirebaseUID(firebaseUID string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.NotFound, "user not found", err)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.NotFound, "user not found", err)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByFirebaseUID retrieves a user by Firebase UID
func (r *PostgresUserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.NotFound, "user not found", err)
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteUser deletes a user, its profile and everything the profile owns:
// posts (with their comments and like edges), authored comments, like
// memberships and both directions of follow edges, all in one transaction.
func (r *PostgresUserRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		err := tx.Where("user_id = ?", id).First(&profile).Error
		if err == nil {
			var postIDs []uint
			if err := tx.Model(&models.Post{}).Where("profile_id = ?", profile.ID).Pluck("id", &postIDs).Error; err != nil {
				return err
			}
			if len(postIDs) > 0 {
				if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
					return err
				}
				if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("follower_id = ? OR following_id = ?", profile.ID, profile.ID).Delete(&models.Follow{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Profile{}, profile.ID).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
