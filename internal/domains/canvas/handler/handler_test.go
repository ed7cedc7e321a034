package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanzone-backend/internal/domains/canvas/repository"
	"fanzone-backend/internal/domains/canvas/service"
	"fanzone-backend/internal/infrastructure/storage"
	"fanzone-backend/internal/shared/response"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewCanvasService(
		repository.NewMemoryCanvasRepository(),
		storage.NewMemoryStore(),
		10*1024*1024,
		50*1024*1024,
	)
	h := NewCanvasHandler(svc)

	r := gin.New()
	r.POST("/canvases", h.Create)
	r.GET("/canvases/:id", h.Get)
	r.POST("/canvases/:id/posts", h.CreatePost)
	r.GET("/canvases/:id/posts", h.ListPosts)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func createCanvas(t *testing.T, r *gin.Engine) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/canvases",
		bytes.NewReader([]byte(`{"name":"match day"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decode(t, w).Data.(map[string]interface{})
	return data["id"].(string)
}

func multipartBody(t *testing.T, postType, mimeType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("type", postType))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="upload.bin"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestCreateTextPostOverHTTP(t *testing.T) {
	r := newTestRouter()
	canvasID := createCanvas(t, r)

	req := httptest.NewRequest(http.MethodPost, "/canvases/"+canvasID+"/posts",
		bytes.NewReader([]byte(`{"type":"TEXT","content":"what a goal"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "TEXT", data["type"])
	assert.Equal(t, "what a goal", data["content"])
	assert.Nil(t, data["file_url"])
}

func TestCreateMediaPostOverHTTP(t *testing.T) {
	r := newTestRouter()
	canvasID := createCanvas(t, r)

	body, contentType := multipartBody(t, "IMAGE", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/canvases/"+canvasID+"/posts", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "IMAGE", data["type"])
	assert.Nil(t, data["content"])
	assert.NotEmpty(t, data["file_url"])
}

func TestCreateMediaPostMissingFile(t *testing.T) {
	r := newTestRouter()
	canvasID := createCanvas(t, r)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("type", "IMAGE"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/canvases/"+canvasID+"/posts", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, w).Error.Code)
}

func TestCreateMediaPostDisallowedMime(t *testing.T) {
	r := newTestRouter()
	canvasID := createCanvas(t, r)

	body, contentType := multipartBody(t, "IMAGE", "image/tiff", []byte("tiff-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/canvases/"+canvasID+"/posts", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CNV003", decode(t, w).Error.Code)
}

func TestCreatePostUnsupportedContentType(t *testing.T) {
	r := newTestRouter()
	canvasID := createCanvas(t, r)

	req := httptest.NewRequest(http.MethodPost, "/canvases/"+canvasID+"/posts",
		bytes.NewReader([]byte("plain text")))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", decode(t, w).Error.Code)
}

func TestCreatePostUnknownCanvas(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/canvases/9f3b6c1e-2a39-4a57-9e7d-1d2f4a5b6c7d/posts",
		bytes.NewReader([]byte(`{"type":"TEXT","content":"hi"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPostsOverHTTP(t *testing.T) {
	r := newTestRouter()
	canvasID := createCanvas(t, r)

	req := httptest.NewRequest(http.MethodPost, "/canvases/"+canvasID+"/posts",
		bytes.NewReader([]byte(`{"type":"TEXT","content":"first"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/canvases/"+canvasID+"/posts", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	posts := decode(t, w).Data.([]interface{})
	assert.Len(t, posts, 1)
}
