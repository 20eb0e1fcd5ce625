package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"francofolies/internal/interfaces"
	"francofolies/internal/models"
)

// Uploader is the part of the S3 transfer manager the exporter needs.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type SnapshotExporter struct {
	concerts interfaces.ConcertRepository
	scenes   interfaces.SceneRepository
	artists  interfaces.ArtistRepository
	uploader Uploader
	bucket   string
	prefix   string

	now   func() time.Time
	newID func() string
}

func NewSnapshotExporter(
	concerts interfaces.ConcertRepository,
	scenes interfaces.SceneRepository,
	artists interfaces.ArtistRepository,
	uploader Uploader,
	bucket, prefix string,
) *SnapshotExporter {
	return &SnapshotExporter{
		concerts: concerts,
		scenes:   scenes,
		artists:  artists,
		uploader: uploader,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.New().String() },
	}
}

// Build reads the whole catalog through the repositories.
func (e *SnapshotExporter) Build(ctx context.Context) (*models.CatalogSnapshot, error) {
	concerts, err := e.concerts.List(ctx)
	if err != nil {
		return nil, err
	}
	scenes, err := e.scenes.List(ctx)
	if err != nil {
		return nil, err
	}
	artists, err := e.artists.List(ctx)
	if err != nil {
		return nil, err
	}

	return &models.CatalogSnapshot{
		GeneratedAt: e.now(),
		Concerts:    concerts,
		Scenes:      scenes,
		Artists:     artists,
	}, nil
}

// Export builds a snapshot and uploads it as JSON. It returns the object key.
func (e *SnapshotExporter) Export(ctx context.Context) (string, error) {
	if e.bucket == "" {
		return "", errors.New("snapshot bucket is not configured")
	}

	snapshot, err := e.Build(ctx)
	if err != nil {
		return "", fmt.Errorf("build snapshot: %w", err)
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	name := fmt.Sprintf("catalog-%s-%s.json", snapshot.GeneratedAt.Format("20060102T150405Z"), e.newID())
	key := path.Join(e.prefix, name)

	_, err = e.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot to s3://%s/%s: %w", e.bucket, key, err)
	}

	log.Info().
		Str("bucket", e.bucket).
		Str("key", key).
		Int("concerts", len(snapshot.Concerts)).
		Int("scenes", len(snapshot.Scenes)).
		Int("artists", len(snapshot.Artists)).
		Msg("Catalog snapshot uploaded")

	return key, nil
}
