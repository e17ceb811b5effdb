package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/sm-customers/internal/domain"
	"github.com/jhoicas/sm-customers/internal/domain/entity"
	"github.com/jhoicas/sm-customers/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementa repository.CompanyRepository sobre la colección companies.
type CompanyRepo struct {
	coll *mongo.Collection
}

// NewCompanyRepo construye el repositorio.
func NewCompanyRepo(db *mongo.Database) *CompanyRepo {
	return &CompanyRepo{coll: db.Collection(CompaniesCollection)}
}

func (r *CompanyRepo) FindByCode(ctx context.Context, code string) (*entity.Company, error) {
	return r.findOne(ctx, "companies.findByCode", bson.D{{Key: "code", Value: code}})
}

func (r *CompanyRepo) FindByCodeAndActivationToken(ctx context.Context, code, token string) (*entity.Company, error) {
	return r.findOne(ctx, "companies.findByCodeAndActivationToken", bson.D{
		{Key: "code", Value: code},
		{Key: "activationToken", Value: token},
	})
}

// Save inserta (ID vacío) o reemplaza filtrando por _id y versión.
func (r *CompanyRepo) Save(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	doc, err := companyToDoc(company)
	if err != nil {
		return nil, domain.NewStoreError("companies.save", err)
	}

	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
		doc.Version = 0
		if _, err := r.coll.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ConflictError("company", doc.Code)
			}
			return nil, domain.NewStoreError("companies.insert", err)
		}
		return doc.toEntity(), nil
	}

	expected := doc.Version
	doc.Version++
	res, err := r.coll.ReplaceOne(ctx, bson.D{
		{Key: "_id", Value: doc.ID},
		{Key: "version", Value: expected},
	}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ConflictError("company", doc.Code)
		}
		return nil, domain.NewStoreError("companies.replace", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrVersionConflict
	}
	return doc.toEntity(), nil
}

func (r *CompanyRepo) FindAll(ctx context.Context) ([]*entity.Company, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, domain.NewStoreError("companies.findAll", err)
	}
	var docs []companyDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, domain.NewStoreError("companies.findAll", err)
	}
	out := make([]*entity.Company, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *CompanyRepo) findOne(ctx context.Context, op string, filter bson.D) (*entity.Company, error) {
	var doc companyDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError(op, err)
	}
	return doc.toEntity(), nil
}
