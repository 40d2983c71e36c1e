package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
	"github.com/jhoicas/destinity-erp/internal/domain/repository"
	"github.com/jhoicas/destinity-erp/pkg/logger"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la colección inventory.
type ProductRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database, log *logger.Logger) *ProductRepo {
	return &ProductRepo{coll: db.Collection(ProductsCollection), log: log.Named("product_repository")}
}

func (r *ProductRepo) NextID() string { return newID() }

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (string, error) {
	doc, err := toProductDoc(product)
	if err != nil {
		return "", domain.DBError("Error al insertar el producto en la base de datos.", fmt.Errorf("id inválido: %w", err))
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", classify(r.log, err, "Error al insertar el producto en la base de datos.")
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, ok := parseID(r.log, id)
	if !ok {
		return nil, nil
	}
	doc, err := findOne[productDoc](ctx, r.coll, bson.M{"_id": oid})
	if err != nil {
		return nil, classify(r.log, err, "Error al consultar el producto.")
	}
	if doc == nil {
		return nil, nil
	}
	return doc.toEntity(), nil
}

func (r *ProductRepo) List(ctx context.Context, page, pageSize int) ([]*entity.Product, error) {
	return r.many(ctx, bson.M{}, "Error al obtener los productos.", pageOptions(page, pageSize))
}

func (r *ProductRepo) FindByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return r.many(ctx, bson.M{"category": category}, "Error al obtener productos por categoría.")
}

// SearchByText busca en nombre, categoría, descripción y proveedor.
func (r *ProductRepo) SearchByText(ctx context.Context, text string) ([]*entity.Product, error) {
	rx := containsIgnoreCase(text)
	filter := bson.M{"$or": bson.A{
		bson.M{"name": rx},
		bson.M{"category": rx},
		bson.M{"description": rx},
		bson.M{"provider": rx},
	}}
	return r.many(ctx, filter, "Error al buscar productos.")
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (int64, error) {
	doc, err := toProductDoc(product)
	if err != nil {
		r.log.Warn().Str("id", product.ID).Msg("id con formato inválido")
		return 0, nil
	}
	oid := doc.ID
	doc.ID = primitive.NilObjectID

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	if err != nil {
		return 0, classify(r.log, err, "Error al actualizar el producto.")
	}
	return res.ModifiedCount, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, ok := parseID(r.log, id)
	if !ok {
		return 0, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, classify(r.log, err, "Error al eliminar el producto.")
	}
	return res.DeletedCount, nil
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, classify(r.log, err, "Error al contar los productos.")
	}
	return n, nil
}

func (r *ProductRepo) many(ctx context.Context, filter bson.M, message string, opts ...*options.FindOptions) ([]*entity.Product, error) {
	products, err := findMany(ctx, r.coll, filter, (*productDoc).toEntity, opts...)
	if err != nil {
		return nil, classify(r.log, err, message)
	}
	return products, nil
}
