package service

import (
	"context"
	"fmt"

	"marketai/internal/codec"
	"marketai/internal/model"
	"marketai/internal/repository"
)

// HistoryService reads back a user's own generation logs
type HistoryService interface {
	List(ctx context.Context, user *model.User, module *model.Module) ([]model.HistoryItem, error)
	Get(ctx context.Context, user *model.User, logID int64) (*model.HistoryItem, error)
}

type historyService struct {
	logRepo repository.RequestLogRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(logRepo repository.RequestLogRepository) HistoryService {
	return &historyService{logRepo: logRepo}
}

func (s *historyService) List(ctx context.Context, user *model.User, module *model.Module) ([]model.HistoryItem, error) {
	var filter *model.Module
	if module != nil {
		m, ok := model.ParseModule(string(*module))
		if !ok {
			return nil, ErrUnknownModule
		}
		filter = &m
	}
	logs, err := s.logRepo.ListByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	items := make([]model.HistoryItem, 0, len(logs))
	for i := range logs {
		item, err := decodeLog(&logs[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *historyService) Get(ctx context.Context, user *model.User, logID int64) (*model.HistoryItem, error) {
	log, err := s.logRepo.GetOne(ctx, logID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find log: %w", err)
	}
	if log == nil {
		return nil, ErrLogNotFound
	}
	return decodeLog(log)
}

func decodeLog(l *model.RequestLog) (*model.HistoryItem, error) {
	inputs, err := codec.DecodeInputs([]byte(l.InputsJSON))
	if err != nil {
		return nil, fmt.Errorf("log %d: %w", l.ID, err)
	}
	output, err := codec.DecodeOutput(l.OutputJSON)
	if err != nil {
		return nil, fmt.Errorf("log %d: %w", l.ID, err)
	}
	return &model.HistoryItem{
		ID:        l.ID,
		Module:    l.Module,
		CreatedAt: l.CreatedAt,
		Inputs:    inputs,
		Output:    output,
	}, nil
}
