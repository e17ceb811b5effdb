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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementa repository.UserRepository sobre la colección users.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepo construye el repositorio.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(UsersCollection)}
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "users.findByUsername", bson.D{{Key: "username", Value: username}})
}

func (r *UserRepo) FindByUsernameAndActivationKey(ctx context.Context, username, key string) (*entity.User, error) {
	return r.findOne(ctx, "users.findByUsernameAndActivationKey", bson.D{
		{Key: "username", Value: username},
		{Key: "activationKey", Value: key},
	})
}

// Save inserta (ID vacío) o reemplaza filtrando por _id y versión.
func (r *UserRepo) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	doc, err := userToDoc(user)
	if err != nil {
		return nil, domain.NewStoreError("users.save", err)
	}

	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
		doc.Version = 0
		if _, err := r.coll.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ConflictError("user", doc.Username)
			}
			return nil, domain.NewStoreError("users.insert", err)
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
			return nil, domain.ConflictError("user", doc.Username)
		}
		return nil, domain.NewStoreError("users.replace", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrVersionConflict
	}
	return doc.toEntity(), nil
}

func (r *UserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, domain.NewStoreError("users.findAll", err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, domain.NewStoreError("users.findAll", err)
	}
	out := make([]*entity.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// HasCompanyRole busca un usuario cuyo array roles contenga exactamente el par.
func (r *UserRepo) HasCompanyRole(ctx context.Context, role entity.CompanyRole) (bool, error) {
	filter := bson.D{{Key: "roles", Value: bson.D{{Key: "$elemMatch", Value: bson.D{
		{Key: "role", Value: string(role.Role)},
		{Key: "companyCode", Value: role.CompanyCode},
	}}}}}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, domain.NewStoreError("users.hasCompanyRole", err)
	}
	return n > 0, nil
}

func (r *UserRepo) findOne(ctx context.Context, op string, filter bson.D) (*entity.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError(op, err)
	}
	return doc.toEntity(), nil
}
