package repository

import (
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// PhotoRepository stores listing photos in MongoDB GridFS. It is only
// constructed when MONGO_URI is configured; the photo routes stay off
// otherwise.
type PhotoRepository struct {
	DB *mongo.Database
}

func NewPhotoRepository(client *mongo.Client, dbName string) *PhotoRepository {
	return &PhotoRepository{DB: client.Database(dbName)}
}

// Upload streams the file into GridFS and returns the hex file id.
func (r *PhotoRepository) Upload(file io.Reader, filename string) (string, error) {
	bucket, err := gridfs.NewBucket(r.DB)
	if err != nil {
		return "", fmt.Errorf("PhotoRepository.Upload bucket: %w", err)
	}

	stream, err := bucket.OpenUploadStream(filename)
	if err != nil {
		return "", fmt.Errorf("PhotoRepository.Upload open: %w", err)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, file); err != nil {
		return "", fmt.Errorf("PhotoRepository.Upload copy: %w", err)
	}
	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

// Download returns the stored bytes for a GridFS file id.
func (r *PhotoRepository) Download(fileID string) ([]byte, error) {
	bucket, err := gridfs.NewBucket(r.DB)
	if err != nil {
		return nil, fmt.Errorf("PhotoRepository.Download bucket: %w", err)
	}

	objID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, fmt.Errorf("PhotoRepository.Download id: %w", err)
	}

	stream, err := bucket.OpenDownloadStream(objID)
	if err != nil {
		return nil, fmt.Errorf("PhotoRepository.Download open: %w", err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("PhotoRepository.Download read: %w", err)
	}
	return data, nil
}
