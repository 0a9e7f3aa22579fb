package league

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"golang.org/x/xerrors"
)

// Uploader stores image blobs in the Firebase storage bucket and resolves
// publicly retrievable URLs for them.
type Uploader struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewUploader(ctx context.Context, firebaseApp *firebase.App, bucketName string) (*Uploader, error) {
	storageClient, err := firebaseApp.Storage(ctx)
	if err != nil {
		return nil, xerrors.Errorf("init storage client: %w", err)
	}
	bucket, err := storageClient.Bucket(bucketName)
	if err != nil {
		return nil, xerrors.Errorf("open bucket %s: %w", bucketName, err)
	}
	return &Uploader{
		bucket:     bucket,
		bucketName: bucketName,
	}, nil
}

// Upload writes the blob under the given path key and returns its public
// URL.
func (u *Uploader) Upload(ctx context.Context, path string, r io.Reader) (string, error) {
	obj := u.bucket.Object(path)

	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", xerrors.Errorf("write object %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", xerrors.Errorf("close object %s: %w", path, err)
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", xerrors.Errorf("publish object %s: %w", path, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, path), nil
}

// EventBannerPath is the storage key for an event banner image.
func EventBannerPath(eventID, filename string) string {
	return fmt.Sprintf("events/%s/%s", eventID, filename)
}

// HallOfFameImagePath is the storage key for a hall of fame image.
func HallOfFameImagePath(entryID, filename string) string {
	return fmt.Sprintf("hallOfFame/%s/%s", entryID, filename)
}
