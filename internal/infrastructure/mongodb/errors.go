package mongodb

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/pkg/logger"
)

// Códigos de error del servidor.
const (
	codeDuplicateKey       = 11000
	codeDocumentValidation = 121
)

const schemaMessage = "El documento no cumple con el esquema definido."

// classify traduce un error del driver a la taxonomía del dominio. El error
// original queda como causa y nunca en el mensaje.
func classify(log *logger.Logger, err error, message string) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		log.Warn().Err(err).Msg("llave duplicada")
		return domain.DuplicatedKey("Ya existe un registro con los mismos datos únicos.", err)
	}
	var se mongo.ServerError
	if errors.As(err, &se) && se.HasErrorCode(codeDocumentValidation) {
		log.Warn().Err(err).Msg("el documento no cumple con el esquema definido")
		return domain.ValidationFailed(schemaMessage, err)
	}
	log.Error().Err(err).Msg(message)
	return domain.DBError(message, err)
}

// parseID convierte el id hexadecimal. Un id inválido se trata como "no existe".
func parseID(log *logger.Logger, id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Warn().Str("id", id).Msg("id con formato inválido")
		return primitive.NilObjectID, false
	}
	return oid, true
}

// containsIgnoreCase construye una regex literal sin distinguir mayúsculas.
func containsIgnoreCase(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

func newID() string {
	return primitive.NewObjectID().Hex()
}
