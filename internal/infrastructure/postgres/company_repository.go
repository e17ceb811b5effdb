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

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id::text, code, version, doc`

// CompanyRepo implementación del puerto CompanyRepository sobre una tabla JSONB.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// FindByCode obtiene una empresa por código; (nil, nil) si no existe.
func (r *CompanyRepo) FindByCode(ctx context.Context, code string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE code = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, code), "companies.findByCode")
}

// FindByCodeAndActivationToken obtiene la empresa solo si el token coincide.
func (r *CompanyRepo) FindByCodeAndActivationToken(ctx context.Context, code, token string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE code = $1 AND doc->>'activationToken' = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, code, token), "companies.findByCodeAndActivationToken")
}

// Save inserta con un UUID nuevo o actualiza exigiendo la versión leída.
func (r *CompanyRepo) Save(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	doc, err := json.Marshal(newCompanyRecord(company))
	if err != nil {
		return nil, domain.NewStoreError("companies.save", err)
	}

	if company.ID == "" {
		id := uuid.NewString()
		_, err := r.db.Exec(ctx,
			`INSERT INTO companies (id, code, version, doc) VALUES ($1, $2, 0, $3)`,
			id, company.Code, doc)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ConflictError("company", company.Code)
			}
			return nil, domain.NewStoreError("companies.insert", err)
		}
		saved := *company
		saved.ID = id
		saved.Version = 0
		return &saved, nil
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE companies SET code = $3, doc = $4, version = version + 1 WHERE id = $1 AND version = $2`,
		company.ID, company.Version, company.Code, doc)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ConflictError("company", company.Code)
		}
		return nil, domain.NewStoreError("companies.update", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrVersionConflict
	}
	saved := *company
	saved.Version++
	return &saved, nil
}

// FindAll lista todas las empresas ordenadas por código.
func (r *CompanyRepo) FindAll(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY code`)
	if err != nil {
		return nil, domain.NewStoreError("companies.findAll", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, domain.NewStoreError("companies.findAll", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("companies.findAll", err)
	}
	return list, nil
}

func (r *CompanyRepo) scanOne(row pgx.Row, op string) (*entity.Company, error) {
	c, err := scanCompany(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.NewStoreError(op, err)
	}
	return c, nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var (
		id, code string
		version  int64
		doc      []byte
		rec      companyRecord
	)
	if err := row.Scan(&id, &code, &version, &doc); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, err
	}
	return rec.toEntity(id, code, version), nil
}
