package service

import (
	"context"
	"fmt"

	"marketai/internal/codec"
	"marketai/internal/export"
	"marketai/internal/model"
	"marketai/internal/repository"
)

// Document is a rendered export ready for download.
type Document struct {
	Filename string
	Content  []byte
}

// ExportService renders a user's log output as a PDF
type ExportService interface {
	ExportPDF(ctx context.Context, user *model.User, logID int64) (*Document, error)
}

type exportService struct {
	logRepo repository.RequestLogRepository
}

// NewExportService creates a new ExportService
func NewExportService(logRepo repository.RequestLogRepository) ExportService {
	return &exportService{logRepo: logRepo}
}

func (s *exportService) ExportPDF(ctx context.Context, user *model.User, logID int64) (*Document, error) {
	log, err := s.logRepo.GetOne(ctx, logID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find log for export: %w", err)
	}
	if log == nil {
		return nil, ErrLogNotFound
	}

	text, err := codec.OutputText(log.OutputJSON)
	if err != nil {
		return nil, fmt.Errorf("log %d: %w", log.ID, err)
	}
	content, err := export.RenderPDF(export.Title(log.Module, log.ID), text)
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename: export.Filename(log.Module, log.ID),
		Content:  content,
	}, nil
}
