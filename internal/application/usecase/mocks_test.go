package usecase_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/sm-customers/internal/application/ports"
	"github.com/jhoicas/sm-customers/internal/domain/entity"
)

// MockCompanyRepository mock del puerto CompanyRepository.
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByCode(ctx context.Context, code string) (*entity.Company, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByCodeAndActivationToken(ctx context.Context, code, token string) (*entity.Company, error) {
	args := m.Called(ctx, code, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

// Save acepta como retorno una entidad fija o una función que recibe lo que se guardó.
func (m *MockCompanyRepository) Save(ctx context.Context, c *entity.Company) (*entity.Company, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(*entity.Company) *entity.Company); ok {
		return fn(c), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context) ([]*entity.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Company), args.Error(1)
}

// MockUserRepository mock del puerto UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameAndActivationKey(ctx context.Context, username, key string) (*entity.User, error) {
	args := m.Called(ctx, username, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	args := m.Called(ctx, u)
	if fn, ok := args.Get(0).(func(*entity.User) *entity.User); ok {
		return fn(u), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) HasCompanyRole(ctx context.Context, role entity.CompanyRole) (bool, error) {
	args := m.Called(ctx, role)
	return args.Bool(0), args.Error(1)
}

// MockHasher mock de ports.PasswordHasher.
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

// fixedTokens generador determinista.
type fixedTokens struct{}

func (fixedTokens) Alphanumeric(n int) (string, error) {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a' + byte(i%26)
	}
	return string(b), nil
}

// recordingNotifier guarda las notificaciones recibidas.
type recordingNotifier struct {
	mu   sync.Mutex
	got  []ports.Notification
	fail error
}

func (r *recordingNotifier) Notify(_ context.Context, n ports.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
	return r.fail
}

func (r *recordingNotifier) types() []ports.NotificationType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.NotificationType, 0, len(r.got))
	for _, n := range r.got {
		out = append(out, n.Type)
	}
	return out
}
