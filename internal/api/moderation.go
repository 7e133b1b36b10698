package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aprilfamily/cookbook-backend/internal/extract"
	"github.com/aprilfamily/cookbook-backend/internal/service"
)

// ModerationHandler serves document upload and the pending-submission
// review endpoints.
type ModerationHandler struct {
	moderation     *service.ModerationService
	uploadDir      string
	maxUploadBytes int64
}

func NewModerationHandler(moderation *service.ModerationService, uploadDir string, maxUploadBytes int64) *ModerationHandler {
	return &ModerationHandler{
		moderation:     moderation,
		uploadDir:      uploadDir,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *ModerationHandler) UploadDocument(c *gin.Context) {
	// Cap the whole body before parsing; the slack covers multipart framing.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+64<<10)

	file, err := c.FormFile("document")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "document file is required"})
		return
	}
	if file.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}
	tmpPath := filepath.Join(h.uploadDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}

	id, err := h.moderation.Submit(c.Request.Context(), service.SubmitRequest{
		Path:          tmpPath,
		OriginalName:  filepath.Base(file.Filename),
		Title:         c.PostForm("title"),
		SubmitterName: currentUserName(c),
	})
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file format"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *ModerationHandler) ListPending(c *gin.Context) {
	pending, err := h.moderation.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending recipes"})
		return
	}
	c.JSON(http.StatusOK, pending)
}

func (h *ModerationHandler) CountPending(c *gin.Context) {
	count, err := h.moderation.CountPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count pending recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *ModerationHandler) GetPending(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	pending, err := h.moderation.GetPending(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submission"})
		return
	}
	c.JSON(http.StatusOK, pending)
}

func (h *ModerationHandler) PublishPending(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	var fields service.RecipeFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.moderation.Publish(c.Request.Context(), id, fields, currentUserName(c))
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish submission"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (h *ModerationHandler) DeletePending(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	err := h.moderation.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete submission"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
