package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aprilfamily/cookbook-backend/internal/extract"
	"github.com/aprilfamily/cookbook-backend/internal/models"
)

// SubmitRequest describes an uploaded document to be turned into a pending
// submission. Path points at the transient copy on disk; it is removed once
// Submit returns, on success and failure alike.
type SubmitRequest struct {
	Path          string
	OriginalName  string
	Title         string
	SubmitterName string
}

// ModerationService implements the submit -> review -> publish workflow for
// uploaded recipe documents.
type ModerationService struct {
	db         *gorm.DB
	extractors *extract.Registry
	archive    *ArchiveService
}

// NewModerationService creates a ModerationService. archive may be nil, in
// which case original uploads are not retained anywhere.
func NewModerationService(db *gorm.DB, extractors *extract.Registry, archive *ArchiveService) *ModerationService {
	return &ModerationService{
		db:         db,
		extractors: extractors,
		archive:    archive,
	}
}

// Submit extracts text from the uploaded document and stores a new pending
// submission. The title defaults to the original file name when absent.
func (s *ModerationService) Submit(ctx context.Context, req SubmitRequest) (uint, error) {
	defer func() {
		if err := os.Remove(req.Path); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove temporary upload %s: %v", req.Path, err)
		}
	}()

	format, err := extract.DetectFormat(req.OriginalName)
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(req.Path)
	if err != nil {
		return 0, fmt.Errorf("read upload: %w", err)
	}

	text, err := s.extractors.Extract(format, data)
	if err != nil {
		return 0, fmt.Errorf("extract %s: %w", format, err)
	}

	// Archival is best-effort; a storage outage must not block submission.
	if s.archive != nil {
		key := fmt.Sprintf("uploads/%s-%s", uuid.New().String(), req.OriginalName)
		if err := s.archive.Store(ctx, key, data, format.ContentType()); err != nil {
			log.Printf("Failed to archive upload %s: %v", req.OriginalName, err)
		}
	}

	title := req.Title
	if title == "" {
		title = req.OriginalName
	}

	pending := models.PendingRecipe{
		Title:         title,
		RawText:       text,
		FileName:      req.OriginalName,
		SubmitterName: req.SubmitterName,
		Status:        models.StatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&pending).Error; err != nil {
		return 0, err
	}
	return pending.ID, nil
}

// ListPending returns all pending submissions, newest first.
func (s *ModerationService) ListPending(ctx context.Context) ([]models.PendingRecipe, error) {
	pending := make([]models.PendingRecipe, 0)
	err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusPending).
		Order("created_at DESC, id DESC").
		Find(&pending).Error
	if err != nil {
		return nil, err
	}
	return pending, nil
}

// CountPending returns the number of pending submissions.
func (s *ModerationService) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.PendingRecipe{}).
		Where("status = ?", models.StatusPending).
		Count(&count).Error
	return count, err
}

// GetPending returns one submission by id, or ErrNotFound.
func (s *ModerationService) GetPending(ctx context.Context, id uint) (*models.PendingRecipe, error) {
	var pending models.PendingRecipe
	if err := s.db.WithContext(ctx).First(&pending, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pending, nil
}

// Publish inserts a new recipe from the supplied fields and marks the
// pending submission published. Both writes happen in one transaction so a
// failure leaves neither. Returns ErrNotFound when the submission is absent
// or already published.
func (s *ModerationService) Publish(ctx context.Context, id uint, fields RecipeFields, authorName string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pending models.PendingRecipe
		err := tx.Where("id = ? AND status = ?", id, models.StatusPending).First(&pending).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		recipe := fields.toModel(authorName)
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		return tx.Model(&models.PendingRecipe{}).
			Where("id = ?", id).
			Update("status", models.StatusPublished).Error
	})
}

// Delete removes a pending submission outright. Returns ErrNotFound when no
// row was deleted.
func (s *ModerationService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.PendingRecipe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
