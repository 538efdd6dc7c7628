package router

import (
	"context"

	"marketai/internal/model"
	"marketai/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ResolveUser(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockGenerationService struct{ mock.Mock }

func (m *MockGenerationService) Generate(ctx context.Context, user *model.User, module model.Module, inputs map[string]any) (*model.GenerationResult, error) {
	args := m.Called(ctx, user, module, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GenerationResult), args.Error(1)
}

type MockHistoryService struct{ mock.Mock }

func (m *MockHistoryService) List(ctx context.Context, user *model.User, module *model.Module) ([]model.HistoryItem, error) {
	args := m.Called(ctx, user, module)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HistoryItem), args.Error(1)
}

func (m *MockHistoryService) Get(ctx context.Context, user *model.User, logID int64) (*model.HistoryItem, error) {
	args := m.Called(ctx, user, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HistoryItem), args.Error(1)
}

type MockExportService struct{ mock.Mock }

func (m *MockExportService) ExportPDF(ctx context.Context, user *model.User, logID int64) (*service.Document, error) {
	args := m.Called(ctx, user, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Document), args.Error(1)
}

type MockAnalyticsService struct{ mock.Mock }

func (m *MockAnalyticsService) Summary(ctx context.Context, user *model.User) (*model.AnalyticsSummary, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalyticsSummary), args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }
