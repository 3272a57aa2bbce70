package repositories

import (
	"context"
	"time"

	"github.com/socialfeed-api/backend/internal/apperrors"
	"github.com/socialfeed-api/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MediaRepository defines the interface for the media-upload registry
type MediaRepository interface {
	SaveMedia(ctx context.Context, media *models.Media) error
	GetMediaByFileName(ctx context.Context, fileName string) (*models.Media, error)
	ListMediaByOwner(ctx context.Context, ownerID uint) ([]models.Media, error)
}

// MongoMediaRepository implements MediaRepository for MongoDB
type MongoMediaRepository struct {
	collection *mongo.Collection
}

// NewMongoMediaRepository creates a new MongoMediaRepository
func NewMongoMediaRepository(db *mongo.Database) *MongoMediaRepository {
	return &MongoMediaRepository{collection: db.Collection("media")}
}

// SaveMedia records an uploaded file
func (r *MongoMediaRepository) SaveMedia(ctx context.Context, media *models.Media) error {
	media.ID = primitive.NewObjectID()
	media.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, media)
	return err
}

// GetMediaByFileName retrieves a media record by its generated filename
func (r *MongoMediaRepository) GetMediaByFileName(ctx context.Context, fileName string) (*models.Media, error) {
	var media models.Media
	err := r.collection.FindOne(ctx, bson.M{"file_name": fileName}).Decode(&media)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.Wrap(apperrors.NotFound, "media not found", err)
		}
		return nil, err
	}
	return &media, nil
}

// ListMediaByOwner retrieves all media uploaded by a profile, newest first
func (r *MongoMediaRepository) ListMediaByOwner(ctx context.Context, ownerID uint) ([]models.Media, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var media []models.Media
	if err = cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, nil
}
