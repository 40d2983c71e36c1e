package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/destinity-erp/internal/domain"
)

func TestError_IsComparaPorKind(t *testing.T) {
	err := domain.NotFound("No existe el producto con el identificador proporcionado")

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, errors.Is(err, domain.ErrBusinessRule))
	assert.Equal(t, "No existe el producto con el identificador proporcionado", err.Error())
}

func TestKindOf_ErrorEnvuelto(t *testing.T) {
	wrapped := fmt.Errorf("contexto: %w", domain.Business("No se detectaron cambios"))

	kind, ok := domain.KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, domain.KindBusinessRule, kind)
}

func TestKindOf_ErrorNoClasificado(t *testing.T) {
	_, ok := domain.KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestInvalidInput_Mensaje(t *testing.T) {
	err := domain.InvalidInput("id", "del usuario")

	assert.Equal(t, domain.KindInvalidInput, err.Kind)
	assert.Equal(t, "id del usuario es requerido", err.Message)
	assert.Equal(t, "id", err.Field)

	assert.Equal(t, "estatus de la venta es requerido", domain.InvalidInput("estatus", "de la venta").Message)
}

func TestDBError_ConservaCausa(t *testing.T) {
	cause := errors.New("socket cerrado")
	err := domain.DBError("Error general en MongoDB.", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, domain.ErrDatabase)
	assert.Equal(t, "Error general en MongoDB.", err.Error())
}

func TestKinds_ConjuntoCerrado(t *testing.T) {
	assert.Len(t, domain.Kinds(), 6)
}
