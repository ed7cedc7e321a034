package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanzone-backend/internal/domains/media/repository"
	"fanzone-backend/internal/domains/media/service"
	"fanzone-backend/internal/infrastructure/storage"
	"fanzone-backend/internal/shared/response"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewMediaService(
		repository.NewMemoryAssetRepository(),
		storage.NewMemoryStore(),
		nil,
	)
	h := NewMediaHandler(svc)

	r := gin.New()
	r.POST("/media/presign", h.Presign)
	r.PUT("/uploads/:id", h.UploadBytes)
	r.POST("/media/:id/finalize", h.Finalize)
	r.GET("/admin/media", h.AdminList)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope response.Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

func presignAsset(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, envelope := doJSON(t, r, http.MethodPost, "/media/presign", gin.H{
		"filename":  "photo.png",
		"mime_type": "image/png",
		"type":      "IMAGE",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope.Data.(map[string]interface{})
	return data["asset_id"].(string)
}

func TestPresignContract(t *testing.T) {
	r := newTestRouter()

	w, envelope := doJSON(t, r, http.MethodPost, "/media/presign", gin.H{
		"filename":  "photo.png",
		"mime_type": "image/png",
		"type":      "IMAGE",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, envelope.Success)

	data := envelope.Data.(map[string]interface{})
	assetID := data["asset_id"].(string)
	assert.Equal(t, "/uploads/"+assetID, data["upload_url"])
	assert.Equal(t, "/uploads/"+assetID, data["public_url"])
}

func TestPresignValidation(t *testing.T) {
	r := newTestRouter()

	w, envelope := doJSON(t, r, http.MethodPost, "/media/presign", gin.H{
		"filename":  "doc.pdf",
		"mime_type": "application/pdf",
		"type":      "DOCUMENT",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
	assert.NotNil(t, envelope.Error.Details)
}

func TestUploadAndFinalizeFlow(t *testing.T) {
	r := newTestRouter()
	assetID := presignAsset(t, r)

	req := httptest.NewRequest(http.MethodPut, "/uploads/"+assetID,
		strings.NewReader(strings.Repeat("x", 2048)))
	req.Header.Set("Content-Type", "application/octet-stream")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, w.Body.Len())

	w2, envelope := doJSON(t, r, http.MethodPost, "/media/"+assetID+"/finalize", gin.H{
		"width": 640, "height": 480,
	})
	require.Equal(t, http.StatusOK, w2.Code)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "READY", data["status"])
	assert.Equal(t, "/uploads/"+assetID, data["original_url"])
	assert.Equal(t, float64(640), data["width"])
}

func TestFinalizeBeforeUpload(t *testing.T) {
	r := newTestRouter()
	assetID := presignAsset(t, r)

	w, envelope := doJSON(t, r, http.MethodPost, "/media/"+assetID+"/finalize", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "MED002", envelope.Error.Code)
}

func TestFinalizeUnknownAsset(t *testing.T) {
	r := newTestRouter()

	w, envelope := doJSON(t, r, http.MethodPost, "/media/"+uuid.NewString()+"/finalize", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "MED001", envelope.Error.Code)
}

func TestUploadUnknownAsset(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPut, "/uploads/"+uuid.NewString(),
		strings.NewReader("bytes"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
