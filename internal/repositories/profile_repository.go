package repositories

import (
	"errors"

	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile directory operations
type ProfileRepository interface {
	CreateProfile(profile *models.Profile) error
	GetProfileByID(id uint) (*models.Profile, error)
	GetProfileByUserID(userID uint) (*models.Profile, error)
	GetProfileByUsername(username string) (*models.Profile, error)
	SearchProfiles(filter models.ProfileFilter) ([]models.Profile, error)
	UpdateProfile(profile *models.Profile) error
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// CreateProfile creates a new profile
func (r *PostgresProfileRepository) CreateProfile(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetProfileByID retrieves a profile by ID
func (r *PostgresProfileRepository) GetProfileByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.NotFound, "profile not found", err)
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfileByUserID retrieves the profile owned by a user account
func (r *PostgresProfileRepository) GetProfileByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.NotFound, "profile not found", err)
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfileByUsername retrieves a profile by its unique username
func (r *PostgresProfileRepository) GetProfileByUsername(username string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("username = ?", username).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.NotFound, "profile not found", err)
		}
		return nil, err
	}
	return &profile, nil
}

// SearchProfiles lists profiles matching all given case-insensitive
// substring filters
func (r *PostgresProfileRepository) SearchProfiles(filter models.ProfileFilter) ([]models.Profile, error) {
	q := r.db.Model(&models.Profile{})
	if filter.Username != "" {
		q = q.Where("LOWER(username) LIKE LOWER(?)", "%"+filter.Username+"%")
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}
	if filter.FirstName != "" {
		q = q.Where("LOWER(first_name) LIKE LOWER(?)", "%"+filter.FirstName+"%")
	}
	if filter.LastName != "" {
		q = q.Where("LOWER(last_name) LIKE LOWER(?)", "%"+filter.LastName+"%")
	}

	var profiles []models.Profile
	if err := q.Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateProfile updates an existing profile
func (r *PostgresProfileRepository) UpdateProfile(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
