package appwrite

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DatabaseID is the fixed logical database all collections live under.
const DatabaseID = "fishlog"

// Collection ids of the fishlog database.
const (
	CollectionUsers       = "users"
	CollectionCatches     = "catches"
	CollectionGroups      = "groups"
	CollectionEvents      = "events"
	CollectionComments    = "comments"
	CollectionChallenges  = "challenges"
	CollectionInvitations = "invitations"
)

// Bucket ids of the file storage.
const (
	BucketCatchPhotos  = "catch-photos"
	BucketGroupAvatars = "group-avatars"
	BucketUserAvatars  = "user-avatars"
)

// BucketPolicy describes the size and type limits enforced for a bucket.
// The remote service enforces the same policy; validating locally avoids
// uploading files that will be rejected anyway.
type BucketPolicy struct {
	ID                string
	Name              string
	MaxFileSize       int64
	AllowedExtensions []string
}

var imageExtensions = []string{"jpg", "jpeg", "png", "webp"}

var buckets = map[string]BucketPolicy{
	BucketCatchPhotos: {
		ID:                BucketCatchPhotos,
		Name:              "Catch Photos",
		MaxFileSize:       10 << 20,
		AllowedExtensions: imageExtensions,
	},
	BucketGroupAvatars: {
		ID:                BucketGroupAvatars,
		Name:              "Group Avatars",
		MaxFileSize:       5 << 20,
		AllowedExtensions: imageExtensions,
	},
	BucketUserAvatars: {
		ID:                BucketUserAvatars,
		Name:              "User Avatars",
		MaxFileSize:       5 << 20,
		AllowedExtensions: imageExtensions,
	},
}

// Bucket returns the policy for the given bucket id.
func Bucket(id string) (BucketPolicy, bool) {
	p, ok := buckets[id]
	return p, ok
}

// ValidateFile checks a file name and size against the bucket policy.
// Returns an error wrapping ErrValidation on rejection.
func (p BucketPolicy) ValidateFile(name string, size int64) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	allowed := false
	for _, e := range p.AllowedExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("file extension %q not allowed in bucket %s: %w", ext, p.ID, ErrValidation)
	}
	if size > p.MaxFileSize {
		return fmt.Errorf("file size %d exceeds bucket %s limit %d: %w", size, p.ID, p.MaxFileSize, ErrValidation)
	}
	return nil
}
