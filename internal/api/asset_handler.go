package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"jobhub/internal/api/middleware"
	"jobhub/internal/storage"
)

// objectStore is the slice of the MinIO wrapper the asset routes need.
type objectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*minio.UploadInfo, error)
	GeneratePresignedURL(ctx context.Context, objectKey string, duration time.Duration) (string, error)
	ListObjects(ctx context.Context, prefix string, limit int) ([]storage.ObjectMeta, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// AssetHandler stores profile images and company logos in object storage,
// scanning uploads when a clamd address is configured.
type AssetHandler struct {
	Storage   objectStore
	ClamdAddr string
	MaxBytes  int64
}

func NewAssetHandler(storageClient objectStore, clamdAddr string, maxBytes int64) *AssetHandler {
	return &AssetHandler{
		Storage:   storageClient,
		ClamdAddr: clamdAddr,
		MaxBytes:  maxBytes,
	}
}

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// UploadAsset accepts a multipart image, optionally scans it, and stores it
// under the caller's key prefix.
func (h *AssetHandler) UploadAsset(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}
	if h.MaxBytes > 0 && file.Size > h.MaxBytes {
		BadRequest(c, "file too large")
		return
	}

	contentType := file.Header.Get("Content-Type")
	extension, allowed := imageExtensions[contentType]
	if !allowed {
		BadRequest(c, "unsupported file type")
		return
	}

	if h.ClamdAddr != "" {
		fileReader, err := file.Open()
		if err != nil {
			Internal(c, "failed to open file")
			return
		}
		abortChan := make(chan bool)
		scanChan, err := clamd.NewClamd(h.ClamdAddr).ScanStream(fileReader, abortChan)
		fileReader.Close()
		if err != nil {
			middleware.LoggerFromContext(c).Error("scan file", slog.Any("error", err))
			Internal(c, "failed to scan file")
			return
		}
		defer close(abortChan)

		for result := range scanChan {
			if result.Status != clamd.RES_OK {
				BadRequest(c, "malicious file detected")
				return
			}
		}
	}

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer fileReader.Close()

	objectKey := fmt.Sprintf("user-assets/%s/%s%s", identity.ID, uuid.NewString(), extension)
	if _, err := h.Storage.UploadFile(c.Request.Context(), objectKey, fileReader, file.Size, contentType); err != nil {
		middleware.LoggerFromContext(c).Error("upload file", slog.Any("error", err))
		Internal(c, "failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"objectKey": objectKey})
}

// GetAssetURL returns a short-lived presigned URL for one of the caller's
// own objects.
func (h *AssetHandler) GetAssetURL(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	objectKey := c.Query("key")
	if objectKey == "" {
		BadRequest(c, "missing key")
		return
	}

	expectedPrefix := fmt.Sprintf("user-assets/%s/", identity.ID)
	if !strings.HasPrefix(objectKey, expectedPrefix) {
		Forbidden(c, "access denied")
		return
	}

	signedURL, err := h.Storage.GeneratePresignedURL(c.Request.Context(), objectKey, 15*time.Minute)
	if err != nil {
		middleware.LoggerFromContext(c).Error("generate presigned url", slog.Any("error", err))
		Internal(c, "failed to generate url")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

// ListAssets returns metadata for the caller's stored objects.
func (h *AssetHandler) ListAssets(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	prefix := fmt.Sprintf("user-assets/%s/", identity.ID)
	objects, err := h.Storage.ListObjects(c.Request.Context(), prefix, 50)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list assets", slog.Any("error", err))
		Internal(c, "failed to list assets")
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": objects})
}

// DeleteAsset removes one of the caller's own objects. Deleting a key that is
// already gone still succeeds.
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	objectKey := c.Query("key")
	if objectKey == "" {
		BadRequest(c, "missing key")
		return
	}

	expectedPrefix := fmt.Sprintf("user-assets/%s/", identity.ID)
	if !strings.HasPrefix(objectKey, expectedPrefix) {
		Forbidden(c, "access denied")
		return
	}

	if err := h.Storage.DeleteObject(c.Request.Context(), objectKey); err != nil {
		middleware.LoggerFromContext(c).Error("delete asset", slog.Any("error", err))
		Internal(c, "failed to delete asset")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}
