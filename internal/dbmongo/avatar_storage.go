package dbmongo

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AvatarStorage stores uploaded avatars in GridFS, keyed by their generated
// storage path, and derives public URLs from a configured base.
type AvatarStorage struct {
	gridFS  *gridfs.Bucket
	baseURL string
}

func NewAvatarStorage(mongoClient *MongoClient, baseURL string) *AvatarStorage {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &AvatarStorage{
		gridFS:  mongoClient.GridFS,
		baseURL: baseURL,
	}
}

// Upload writes the file content under the given path. The path doubles as
// the GridFS filename so downloads and URL derivation use the same key.
func (as *AvatarStorage) Upload(ctx context.Context, path string, content io.Reader) error {
	metadata := bson.M{
		"uploaded_at": time.Now().UTC(),
	}
	opts := options.GridFSUpload().SetMetadata(metadata)

	stream, err := as.gridFS.OpenUploadStream(path, opts)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, content); err != nil {
		return fmt.Errorf("file copy failed: %w", err)
	}
	return nil
}

// PublicURL returns the publicly resolvable URL for a stored path.
func (as *AvatarStorage) PublicURL(path string) string {
	return as.baseURL + path
}

// Download streams a stored file back, for serving public URLs.
func (as *AvatarStorage) Download(ctx context.Context, path string, w io.Writer) error {
	if _, err := as.gridFS.DownloadToStreamByName(path, w); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	return nil
}
