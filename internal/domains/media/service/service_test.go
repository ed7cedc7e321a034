package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanzone-backend/internal/domains/media/model"
	"fanzone-backend/internal/domains/media/repository"
	"fanzone-backend/internal/infrastructure/storage"
)

func newTestService() (ServiceInterface, repository.AssetRepository, *storage.MemoryStore) {
	repo := repository.NewMemoryAssetRepository()
	store := storage.NewMemoryStore()
	return NewMediaService(repo, store, nil), repo, store
}

func TestRegisterAsset(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	presign, err := svc.RegisterAsset(ctx, model.RegisterAssetRequest{
		FileName: "photo.png",
		MimeType: "image/png",
		Type:     "IMAGE",
	})
	require.NoError(t, err)

	assert.Equal(t, "/uploads/"+presign.AssetID, presign.UploadURL)
	assert.Equal(t, "/uploads/"+presign.AssetID, presign.PublicURL)

	assetID, err := uuid.Parse(presign.AssetID)
	require.NoError(t, err)

	asset, err := svc.GetAsset(ctx, assetID)
	require.NoError(t, err)
	assert.Equal(t, model.AssetStatusPending, asset.Status)
}

func TestRegisterAssetRejectsUnknownType(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RegisterAsset(context.Background(), model.RegisterAssetRequest{
		FileName: "doc.pdf",
		MimeType: "application/pdf",
		Type:     "DOCUMENT",
	})
	require.Error(t, err)

	var validationErrs validation.Errors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestRegisterAssetRequiresAllFields(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RegisterAsset(context.Background(), model.RegisterAssetRequest{
		Type: "IMAGE",
	})
	require.Error(t, err)
}

func TestFinalizeBeforeBytesFails(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	presign, err := svc.RegisterAsset(ctx, model.RegisterAssetRequest{
		FileName: "photo.png",
		MimeType: "image/png",
		Type:     "IMAGE",
	})
	require.NoError(t, err)
	assetID := uuid.MustParse(presign.AssetID)

	_, err = svc.Finalize(ctx, assetID, model.FinalizeRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrBytesMissing)

	// The asset stays PENDING.
	asset, err := svc.GetAsset(ctx, assetID)
	require.NoError(t, err)
	assert.Equal(t, model.AssetStatusPending, asset.Status)
}

func TestFinalizeUnknownAsset(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Finalize(context.Background(), uuid.New(), model.FinalizeRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrAssetNotFound)
}

func TestUploadLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	presign, err := svc.RegisterAsset(ctx, model.RegisterAssetRequest{
		FileName: "photo.png",
		MimeType: "image/png",
		Type:     "IMAGE",
	})
	require.NoError(t, err)
	assetID := uuid.MustParse(presign.AssetID)

	payload := bytes.Repeat([]byte{0xAB}, 2*1024*1024)
	err = svc.AcceptBytes(ctx, assetID, bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)

	width, height := 800, 600
	asset, err := svc.Finalize(ctx, assetID, model.FinalizeRequest{Width: &width, Height: &height})
	require.NoError(t, err)

	assert.Equal(t, model.AssetStatusReady, asset.Status)
	assert.Equal(t, "/uploads/"+presign.AssetID, asset.OriginalURL)
	assert.Equal(t, presign.AssetID, asset.OriginalPath)
	require.NotNil(t, asset.Width)
	assert.Equal(t, 800, *asset.Width)
}

func TestFinalizeIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	presign, err := svc.RegisterAsset(ctx, model.RegisterAssetRequest{
		FileName: "clip.mp4",
		MimeType: "video/mp4",
		Type:     "VIDEO",
	})
	require.NoError(t, err)
	assetID := uuid.MustParse(presign.AssetID)

	require.NoError(t, svc.AcceptBytes(ctx, assetID, bytes.NewReader([]byte("video")), 5))

	first, err := svc.Finalize(ctx, assetID, model.FinalizeRequest{})
	require.NoError(t, err)

	// A second finalize returns the asset unchanged, no new transition.
	second, err := svc.Finalize(ctx, assetID, model.FinalizeRequest{})
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt)
}

func TestAcceptBytesUnknownAsset(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.AcceptBytes(context.Background(), uuid.New(), bytes.NewReader([]byte("x")), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrAssetNotFound)
}

func TestPurgeStale(t *testing.T) {
	repo := repository.NewMemoryAssetRepository()
	store := storage.NewMemoryStore()
	svc := NewMediaService(repo, store, nil)
	ctx := context.Background()

	stale := &model.Asset{
		ID:        uuid.New(),
		FileName:  "old.png",
		MimeType:  "image/png",
		Type:      model.AssetTypeImage,
		Status:    model.AssetStatusPending,
		CreatedAt: time.Now().Add(-48 * time.Hour),
		UpdatedAt: time.Now().Add(-48 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, stale))

	fresh := &model.Asset{
		ID:        uuid.New(),
		FileName:  "new.png",
		MimeType:  "image/png",
		Type:      model.AssetTypeImage,
		Status:    model.AssetStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, fresh))

	purged, err := svc.PurgeStale(ctx, 24)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = repo.GetByID(ctx, stale.ID)
	assert.ErrorIs(t, err, model.ErrAssetNotFound)

	_, err = repo.GetByID(ctx, fresh.ID)
	assert.NoError(t, err)
}
