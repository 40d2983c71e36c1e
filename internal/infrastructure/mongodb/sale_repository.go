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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre la colección sales.
type SaleRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(db *mongo.Database, log *logger.Logger) *SaleRepo {
	return &SaleRepo{coll: db.Collection(SalesCollection), log: log.Named("sale_repository")}
}

func (r *SaleRepo) NextID() string { return newID() }

func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) (string, error) {
	doc, err := toSaleDoc(sale)
	if err != nil {
		return "", domain.DBError("Error al insertar la venta en la base de datos.", fmt.Errorf("id inválido: %w", err))
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", classify(r.log, err, "Error al insertar la venta en la base de datos.")
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *SaleRepo) FindByID(ctx context.Context, id string) (*entity.Sale, error) {
	oid, ok := parseID(r.log, id)
	if !ok {
		return nil, nil
	}
	doc, err := findOne[saleDoc](ctx, r.coll, bson.M{"_id": oid})
	if err != nil {
		return nil, classify(r.log, err, "Error al consultar la venta.")
	}
	if doc == nil {
		return nil, nil
	}
	return doc.toEntity(), nil
}

func (r *SaleRepo) List(ctx context.Context, page, pageSize int) ([]*entity.Sale, error) {
	return r.many(ctx, bson.M{}, "Error al obtener las ventas.", pageOptions(page, pageSize))
}

func (r *SaleRepo) FindByStatus(ctx context.Context, status string) ([]*entity.Sale, error) {
	return r.many(ctx, bson.M{"status": status}, "Error al obtener ventas por estatus.")
}

// SearchByText busca en método de pago, nombre del cliente y estatus.
func (r *SaleRepo) SearchByText(ctx context.Context, text string) ([]*entity.Sale, error) {
	rx := containsIgnoreCase(text)
	filter := bson.M{"$or": bson.A{
		bson.M{"paymentMethod": rx},
		bson.M{"customerInfo.name": rx},
		bson.M{"status": rx},
	}}
	return r.many(ctx, filter, "Error al buscar ventas.")
}

func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) (int64, error) {
	doc, err := toSaleDoc(sale)
	if err != nil {
		r.log.Warn().Str("id", sale.ID).Msg("id con formato inválido")
		return 0, nil
	}
	oid := doc.ID
	doc.ID = primitive.NilObjectID

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	if err != nil {
		return 0, classify(r.log, err, "Error al actualizar la venta.")
	}
	return res.ModifiedCount, nil
}

func (r *SaleRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, ok := parseID(r.log, id)
	if !ok {
		return 0, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, classify(r.log, err, "Error al eliminar la venta.")
	}
	return res.DeletedCount, nil
}

func (r *SaleRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, classify(r.log, err, "Error al contar las ventas.")
	}
	return n, nil
}

func (r *SaleRepo) many(ctx context.Context, filter bson.M, message string, opts ...*options.FindOptions) ([]*entity.Sale, error) {
	sales, err := findMany(ctx, r.coll, filter, (*saleDoc).toEntity, opts...)
	if err != nil {
		return nil, classify(r.log, err, message)
	}
	return sales, nil
}
