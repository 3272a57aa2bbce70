package repositories

import (
	"errors"

	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post storage and the read-side
// feed queries (count-annotated, filtered listings)
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostDetail(id uint) (*models.PostDetail, error)
	ListPosts(filter models.FeedFilter) ([]models.FeedPost, error)
	CountPosts(filter models.FeedFilter) (int64, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post; the server assigns id and created_at
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a bare post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.NotFound, "post not found", err)
		}
		return nil, err
	}
	return &post, nil
}

// GetPostDetail retrieves a post with author username, like count and the
// full comment thread ordered oldest first
func (r *PostgresPostRepository) GetPostDetail(id uint) (*models.PostDetail, error) {
	var detail models.PostDetail
	err := r.db.Table("posts").
		Select(`posts.id, posts.profile_id, posts.created_at, posts.body, posts.tags, posts.attachment,
			profiles.username AS posted_by,
			(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes`).
		Joins("JOIN profiles ON profiles.id = posts.profile_id").
		Where("posts.id = ?", id).
		Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.ID == 0 {
		return nil, apperrors.New(apperrors.NotFound, "post not found")
	}

	comments := []models.CommentView{}
	err = r.db.Table("comments").
		Select(`comments.id, comments.created_at, comments.body, profiles.username AS "user"`).
		Joins("JOIN profiles ON profiles.id = comments.profile_id").
		Where("comments.post_id = ?", id).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&comments).Error
	if err != nil {
		return nil, err
	}
	detail.Comments = comments
	return &detail, nil
}

// feedConditions applies the filter predicates shared by ListPosts and
// CountPosts onto a posts query joined with profiles
func (r *PostgresPostRepository) feedConditions(q *gorm.DB, filter models.FeedFilter) *gorm.DB {
	if filter.Tag != "" {
		q = q.Where("LOWER(posts.tags) LIKE LOWER(?)", "%"+filter.Tag+"%")
	}
	if filter.Author != "" {
		q = q.Where("LOWER(profiles.username) LIKE LOWER(?)", "%"+filter.Author+"%")
	}
	if filter.AuthorID != 0 {
		q = q.Where("posts.profile_id = ?", filter.AuthorID)
	}
	if filter.LikedBy != 0 {
		q = q.Where("posts.id IN (?)",
			r.db.Table("likes").Select("post_id").Where("profile_id = ?", filter.LikedBy),
		)
	}
	if filter.FollowedBy != 0 {
		q = q.Where("posts.profile_id IN (?)",
			r.db.Table("follows").Select("following_id").Where("follower_id = ?", filter.FollowedBy),
		)
	}
	return q
}

// ListPosts returns count-annotated posts matching the filter, newest first
// with id ascending as the tie-break for equal timestamps
func (r *PostgresPostRepository) ListPosts(filter models.FeedFilter) ([]models.FeedPost, error) {
	q := r.db.Table("posts").
		Select(`posts.id, posts.profile_id, posts.created_at, posts.body, posts.tags, posts.attachment,
			profiles.username AS posted_by,
			(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes,
			(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS commented`).
		Joins("JOIN profiles ON profiles.id = posts.profile_id")

	q = r.feedConditions(q, filter).
		Order("posts.created_at DESC, posts.id ASC")

	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	posts := []models.FeedPost{}
	if err := q.Scan(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountPosts counts posts matching the filter, for pagination metadata
func (r *PostgresPostRepository) CountPosts(filter models.FeedFilter) (int64, error) {
	q := r.db.Table("posts").
		Joins("JOIN profiles ON profiles.id = posts.profile_id")
	q = r.feedConditions(q, filter)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdatePost updates an existing post's mutable fields
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post and, inside the same transaction, its comments
// and like edges so no orphan rows survive
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.New(apperrors.NotFound, "post not found")
		}
		return nil
	})
}
