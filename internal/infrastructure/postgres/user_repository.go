package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sm-customers/internal/domain"
	"github.com/jhoicas/sm-customers/internal/domain/entity"
	"github.com/jhoicas/sm-customers/internal/domain/repository"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id::text, username, version, doc`

// UserRepo implementación del puerto UserRepository sobre una tabla JSONB.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// FindByUsername obtiene un usuario; (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, username), "users.findByUsername")
}

// FindByUsernameAndActivationKey obtiene el usuario solo si la clave coincide.
func (r *UserRepo) FindByUsernameAndActivationKey(ctx context.Context, username, key string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND doc->>'activationKey' = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, username, key), "users.findByUsernameAndActivationKey")
}

// Save inserta con un UUID nuevo o actualiza exigiendo la versión leída.
func (r *UserRepo) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	doc, err := json.Marshal(newUserRecord(user))
	if err != nil {
		return nil, domain.NewStoreError("users.save", err)
	}

	saved := *user
	saved.Roles = append([]entity.CompanyRole(nil), user.Roles...)

	if user.ID == "" {
		id := uuid.NewString()
		_, err := r.db.Exec(ctx,
			`INSERT INTO users (id, username, version, doc) VALUES ($1, $2, 0, $3)`,
			id, user.Username, doc)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ConflictError("user", user.Username)
			}
			return nil, domain.NewStoreError("users.insert", err)
		}
		saved.ID = id
		saved.Version = 0
		return &saved, nil
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE users SET username = $3, doc = $4, version = version + 1 WHERE id = $1 AND version = $2`,
		user.ID, user.Version, user.Username, doc)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ConflictError("user", user.Username)
		}
		return nil, domain.NewStoreError("users.update", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrVersionConflict
	}
	saved.Version++
	return &saved, nil
}

// FindAll lista todos los usuarios ordenados por username.
func (r *UserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, domain.NewStoreError("users.findAll", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, domain.NewStoreError("users.findAll", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("users.findAll", err)
	}
	return list, nil
}

// HasCompanyRole usa contención JSONB sobre doc->'roles' (índice GIN en la migración).
func (r *UserRepo) HasCompanyRole(ctx context.Context, role entity.CompanyRole) (bool, error) {
	probe, err := json.Marshal([]roleRecord{{Role: string(role.Role), CompanyCode: role.CompanyCode}})
	if err != nil {
		return false, domain.NewStoreError("users.hasCompanyRole", err)
	}
	var exists bool
	err = r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE doc->'roles' @> $1::jsonb)`, string(probe),
	).Scan(&exists)
	if err != nil {
		return false, domain.NewStoreError("users.hasCompanyRole", err)
	}
	return exists, nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	u, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.NewStoreError(op, err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id, username string
		version      int64
		doc          []byte
		rec          userRecord
	)
	if err := row.Scan(&id, &username, &version, &doc); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, err
	}
	return rec.toEntity(id, username, version), nil
}
