package appwrite

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// StorageAPI is the binary-object surface the store depends on. Size and
// extension policy is enforced by the caller via BucketPolicy before
// invocation, not here.
type StorageAPI interface {
	CreateFile(ctx context.Context, bucket, fileID, fileName string, file io.Reader) (string, error)
	DeleteFile(ctx context.Context, bucket, fileID string) error
}

// Storage implements StorageAPI against the remote service.
type Storage struct {
	c *Client
}

var _ StorageAPI = (*Storage)(nil)

type fileObject struct {
	ID string `json:"$id"`
}

// CreateFile uploads the file under the given id and returns the id of the
// stored object.
func (s *Storage) CreateFile(ctx context.Context, bucket, fileID, fileName string, file io.Reader) (string, error) {
	path := fmt.Sprintf("/storage/buckets/%s/files", bucket)
	var obj fileObject
	if err := s.c.upload(ctx, path, fileID, fileName, file, &obj); err != nil {
		return "", err
	}
	return obj.ID, nil
}

// DeleteFile removes a stored object. Fails with ErrNotFound when already
// absent.
func (s *Storage) DeleteFile(ctx context.Context, bucket, fileID string) error {
	path := fmt.Sprintf("/storage/buckets/%s/files/%s", bucket, fileID)
	return s.c.call(ctx, http.MethodDelete, path, nil, nil)
}
