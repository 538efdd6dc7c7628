package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"marketai/internal/model"
	"marketai/internal/repository"

	"github.com/stretchr/testify/mock"
)

// memUserRepo is an in-memory repository.UserRepository.
type memUserRepo struct {
	mu     sync.Mutex
	users  []*model.User
	nextID int
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Email = repository.NormalizeEmail(user.Email)
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = repository.NormalizeEmail(email)
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// memLogRepo is an in-memory repository.RequestLogRepository.
type memLogRepo struct {
	mu     sync.Mutex
	logs   []model.RequestLog
	nextID int64
}

func (r *memLogRepo) Append(ctx context.Context, l *model.RequestLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	l.ID = r.nextID
	r.logs = append(r.logs, *l)
	return nil
}

func (r *memLogRepo) ListByUser(ctx context.Context, userID int, module *model.Module) ([]model.RequestLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.RequestLog{}
	for _, l := range r.logs {
		if l.UserID != userID {
			continue
		}
		if module != nil && *module != "" && l.Module != *module {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > model.HistoryLimit {
		out = out[:model.HistoryLimit]
	}
	return out, nil
}

func (r *memLogRepo) GetOne(ctx context.Context, id int64, userID int) (*model.RequestLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.logs {
		if l.ID == id && l.UserID == userID {
			cp := l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memLogRepo) CountAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.logs)), nil
}

func (r *memLogRepo) CountByModule(ctx context.Context, module model.Module) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.logs {
		if l.Module == module {
			n++
		}
	}
	return n, nil
}

// MockGenerator is a mock implementation of Generator.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, apiKey, modelName, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, apiKey, modelName, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

// steppingClock returns a time one second later on each call.
func steppingClock() func() time.Time {
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}
