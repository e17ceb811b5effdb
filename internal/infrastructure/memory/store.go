// Package memory implementa los repositorios en memoria (STORE_DRIVER=memory y tests de handlers).
// Replica las garantías del almacén de documentos: unicidad de code/username y versión optimista.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/sm-customers/internal/domain"
	"github.com/jhoicas/sm-customers/internal/domain/entity"
	"github.com/jhoicas/sm-customers/internal/domain/repository"
)

var (
	_ repository.CompanyRepository = (*CompanyRepo)(nil)
	_ repository.UserRepository    = (*UserRepo)(nil)
)

// CompanyRepo almacén de empresas en memoria. Devuelve copias: quien llama nunca comparte
// estado con el almacén.
type CompanyRepo struct {
	mu     sync.RWMutex
	byID   map[string]entity.Company
	byCode map[string]string
	writes int
}

// NewCompanyRepo construye un repositorio vacío.
func NewCompanyRepo() *CompanyRepo {
	return &CompanyRepo{byID: map[string]entity.Company{}, byCode: map[string]string{}}
}

func (r *CompanyRepo) FindByCode(_ context.Context, code string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	c := r.byID[id]
	return &c, nil
}

func (r *CompanyRepo) FindByCodeAndActivationToken(ctx context.Context, code, token string) (*entity.Company, error) {
	c, err := r.FindByCode(ctx, code)
	if err != nil || c == nil {
		return nil, err
	}
	if c.ActivationToken == nil || *c.ActivationToken != token {
		return nil, nil
	}
	return c, nil
}

func (r *CompanyRepo) Save(_ context.Context, company *entity.Company) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *company
	if c.ID == "" {
		if _, dup := r.byCode[c.Code]; dup {
			return nil, domain.ConflictError("company", c.Code)
		}
		c.ID = uuid.NewString()
		c.Version = 0
	} else {
		current, ok := r.byID[c.ID]
		if !ok || current.Version != c.Version {
			return nil, domain.ErrVersionConflict
		}
		c.Version++
	}
	r.byID[c.ID] = c
	r.byCode[c.Code] = c.ID
	r.writes++
	return &c, nil
}

func (r *CompanyRepo) FindAll(_ context.Context) ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Company, 0, len(r.byID))
	for _, c := range r.byID {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// Writes número de escrituras exitosas.
func (r *CompanyRepo) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}

// UserRepo almacén de usuarios en memoria.
type UserRepo struct {
	mu         sync.RWMutex
	byID       map[string]entity.User
	byUsername map[string]string
	writes     int
}

// NewUserRepo construye un repositorio vacío.
func NewUserRepo() *UserRepo {
	return &UserRepo{byID: map[string]entity.User{}, byUsername: map[string]string{}}
}

func (r *UserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	u := cloneUser(r.byID[id])
	return &u, nil
}

func (r *UserRepo) FindByUsernameAndActivationKey(ctx context.Context, username, key string) (*entity.User, error) {
	u, err := r.FindByUsername(ctx, username)
	if err != nil || u == nil {
		return nil, err
	}
	if u.ActivationKey == nil || *u.ActivationKey != key {
		return nil, nil
	}
	return u, nil
}

func (r *UserRepo) Save(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := cloneUser(*user)
	if u.ID == "" {
		if _, dup := r.byUsername[u.Username]; dup {
			return nil, domain.ConflictError("user", u.Username)
		}
		u.ID = uuid.NewString()
		u.Version = 0
	} else {
		current, ok := r.byID[u.ID]
		if !ok || current.Version != u.Version {
			return nil, domain.ErrVersionConflict
		}
		u.Version++
	}
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u.ID
	r.writes++
	out := cloneUser(u)
	return &out, nil
}

func (r *UserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		u := cloneUser(u)
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *UserRepo) HasCompanyRole(_ context.Context, role entity.CompanyRole) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if entity.HasRole(u.Roles, role) {
			return true, nil
		}
	}
	return false, nil
}

// Writes número de escrituras exitosas.
func (r *UserRepo) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}

func cloneUser(u entity.User) entity.User {
	u.Roles = append([]entity.CompanyRole(nil), u.Roles...)
	return u
}
