// Package mongodb implementa los puertos de persistencia sobre MongoDB.
// Colecciones: hr (usuarios), inventory (productos) y sales (ventas).
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/destinity-erp/pkg/config"
)

// Nombres de colección.
const (
	UsersCollection    = "hr"
	ProductsCollection = "inventory"
	SalesCollection    = "sales"
)

// Connect abre el cliente, verifica la conexión con un ping y devuelve la base configurada.
// El llamador es dueño del cliente y debe invocar Disconnect al terminar.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout).
		SetTimeout(timeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Pinger verifica la disponibilidad del almacén (health check).
type Pinger struct {
	client *mongo.Client
}

// NewPinger construye el verificador.
func NewPinger(client *mongo.Client) *Pinger {
	return &Pinger{client: client}
}

// Ping consulta al primario.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes crea los índices que respaldan las búsquedas y la unicidad del
// correo. Es idempotente: crear un índice existente no falla.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
			{Keys: bson.D{{Key: "userType", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetName("type_status")},
		},
		ProductsCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}}, Options: options.Index().SetName("category")},
		},
		SalesCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("status")},
		},
	}
	for _, coll := range []string{UsersCollection, ProductsCollection, SalesCollection} {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, specs[coll]); err != nil {
			return fmt.Errorf("crear índices de %s: %w", coll, err)
		}
	}
	return nil
}
