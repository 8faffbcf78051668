package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"shikhi_backend/config"
)

func uploadApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		UploadDir:     dir,
		PublicBaseURL: "http://localhost:8080",
	}

	app := fiber.New()
	app.Post("/api/upload", NewUploadsController(cfg).Upload)
	return app, dir
}

func multipartFile(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	assert.NoError(t, err)
	part.Write([]byte(content))
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadStoresFileAndReturnsURL(t *testing.T) {
	app, dir := uploadApp(t)

	body, contentType := multipartFile(t, "file", "notes.pdf", "lesson notes")
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Success  bool   `json:"success"`
		URL      string `json:"url"`
		Filename string `json:"filename"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.True(t, result.Success)
	assert.Equal(t, "notes.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(result.URL, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(result.URL, ".pdf"))

	// The stored name is generated, not the client's filename.
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NotEqual(t, "notes.pdf", entries[0].Name())
	assert.Equal(t, ".pdf", filepath.Ext(entries[0].Name()))
}

func TestUploadRejectsMissingFile(t *testing.T) {
	app, _ := uploadApp(t)

	req := httptest.NewRequest("POST", "/api/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=empty")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
