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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la colección hr.
type UserRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *mongo.Database, log *logger.Logger) *UserRepo {
	return &UserRepo{coll: db.Collection(UsersCollection), log: log.Named("user_repository")}
}

func (r *UserRepo) NextID() string { return newID() }

// Create inserta el usuario y devuelve el id asignado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (string, error) {
	doc, err := toUserDoc(user)
	if err != nil {
		return "", domain.DBError("Error al insertar al usuario en la base de datos.", fmt.Errorf("id inválido: %w", err))
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", classify(r.log, err, "Error al insertar al usuario en la base de datos.")
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

// FindByID obtiene un usuario por id; (nil, nil) si no existe o el id es inválido.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, ok := parseID(r.log, id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, bson.M{"_id": oid}, "Error al consultar el usuario.")
}

// FindByEmail obtiene un usuario por correo exacto.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.one(ctx, bson.M{"email": email}, "Error al consultar el usuario por correo.")
}

// List pagina usuarios; userType vacío no filtra.
func (r *UserRepo) List(ctx context.Context, page, pageSize int, userType string) ([]*entity.User, error) {
	filter := bson.M{}
	if userType != "" {
		filter["userType"] = userType
	}
	return r.many(ctx, filter, "Error al obtener los usuarios.", pageOptions(page, pageSize))
}

func (r *UserRepo) FindByStatus(ctx context.Context, status, userType string) ([]*entity.User, error) {
	return r.many(ctx, bson.M{"status": status, "userType": userType}, "Error al obtener usuarios por estatus.")
}

func (r *UserRepo) FindByDepartment(ctx context.Context, department string) ([]*entity.User, error) {
	return r.many(ctx, bson.M{"employeeData.department": department}, "Error al obtener empleados por departamento.")
}

func (r *UserRepo) FindByServiceType(ctx context.Context, serviceType string) ([]*entity.User, error) {
	return r.many(ctx, bson.M{"providerData.serviceType": serviceType}, "Error al obtener proveedores por servicio.")
}

// SearchByText busca coincidencias parciales en nombre, apellidos y correo.
func (r *UserRepo) SearchByText(ctx context.Context, text, userType string) ([]*entity.User, error) {
	rx := containsIgnoreCase(text)
	filter := bson.M{
		"userType": userType,
		"$or": bson.A{
			bson.M{"firstName": rx},
			bson.M{"lastName": rx},
			bson.M{"middleName": rx},
			bson.M{"email": rx},
		},
	}
	return r.many(ctx, filter, "Error al buscar usuarios.")
}

// Update aplica $set sobre el documento y devuelve la cantidad modificada.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) (int64, error) {
	doc, err := toUserDoc(user)
	if err != nil {
		r.log.Warn().Str("id", user.ID).Msg("id con formato inválido")
		return 0, nil
	}
	oid := doc.ID
	doc.ID = primitive.NilObjectID

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	if err != nil {
		return 0, classify(r.log, err, "Error al actualizar el usuario.")
	}
	return res.ModifiedCount, nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, ok := parseID(r.log, id)
	if !ok {
		return 0, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, classify(r.log, err, "Error al eliminar usuario.")
	}
	return res.DeletedCount, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, classify(r.log, err, "Error al contar los usuarios.")
	}
	return n, nil
}

func (r *UserRepo) one(ctx context.Context, filter bson.M, message string) (*entity.User, error) {
	doc, err := findOne[userDoc](ctx, r.coll, filter)
	if err != nil {
		return nil, classify(r.log, err, message)
	}
	if doc == nil {
		return nil, nil
	}
	return doc.toEntity(), nil
}

func (r *UserRepo) many(ctx context.Context, filter bson.M, message string, opts ...*options.FindOptions) ([]*entity.User, error) {
	users, err := findMany(ctx, r.coll, filter, (*userDoc).toEntity, opts...)
	if err != nil {
		return nil, classify(r.log, err, message)
	}
	return users, nil
}
