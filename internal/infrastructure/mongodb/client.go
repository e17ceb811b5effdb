// Package mongodb implementa los repositorios sobre MongoDB (almacén por defecto).
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Colecciones.
const (
	CompaniesCollection = "companies"
	UsersCollection     = "users"
)

// Connect abre el cliente, verifica con ping y devuelve la base de datos indicada.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(database), nil
}

// EnsureIndexes crea los índices únicos de las claves naturales. Es idempotente.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		field      string
	}{
		{CompaniesCollection, "code"},
		{UsersCollection, "username"},
	}
	for _, ix := range indexes {
		_, err := db.Collection(ix.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: ix.field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(ix.field + "_unique"),
		})
		if err != nil {
			return fmt.Errorf("creando índice %s.%s: %w", ix.collection, ix.field, err)
		}
	}
	return nil
}
