package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/destinity-erp/internal/application/usecase"
	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

const saleID = "64b7f0c2a1b2c3d4e5f60718"

var saleClockStart = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func qty(v int64) *int64 { return &v }

func newSaleInput() *entity.SaleInput {
	return &entity.SaleInput{
		CustomerInfo: &entity.CustomerInfo{ID: "c1", Name: "María Gómez", Email: "maria@cliente.mx"},
		ProductSold: &entity.ProductSoldInput{
			ID:       "p1",
			Name:     "Arroz 1kg",
			Price:    fp(32.55),
			Quantity: qty(3),
		},
		PaymentMethod: "Efectivo",
	}
}

func newSaleUseCase(repo *mockSaleRepo, receipts usecase.ReceiptRenderer) *usecase.SaleUseCase {
	return usecase.NewSaleUseCase(repo, receipts, usecase.WithClock(func() time.Time { return saleClockStart }))
}

func TestSaleUseCase_Create_CalculaSubtotalYTotal(t *testing.T) {
	repo := new(mockSaleRepo)
	repo.On("NextID").Return(saleID)

	var saved *entity.Sale
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Sale")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Sale) }).
		Return(saleID, nil)
	repo.On("FindByID", mock.Anything, saleID).
		Return(&entity.Sale{ID: saleID, CustomerInfo: entity.CustomerInfo{Name: "María Gómez"}, TotalAmount: 97.65}, nil)

	got, err := newSaleUseCase(repo, nil).Create(context.Background(), newSaleInput())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "María Gómez", got.Name)

	require.NotNil(t, saved)
	assert.Equal(t, saleID, saved.ID)
	assert.Equal(t, 97.65, saved.ProductSold.SubTotal)
	assert.Equal(t, 97.65, saved.TotalAmount)
	assert.Equal(t, entity.DefaultSaleStatus, saved.Status)
	assert.Equal(t, saleClockStart, saved.SaleDate)
	assert.Equal(t, saleClockStart, saved.CreatedAt)
	repo.AssertExpectations(t)
}

func TestSaleUseCase_Create_RespetaTotalesRecibidos(t *testing.T) {
	repo := new(mockSaleRepo)
	repo.On("NextID").Return(saleID)
	var saved *entity.Sale
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Sale) }).
		Return(saleID, nil)
	repo.On("FindByID", mock.Anything, saleID).Return(&entity.Sale{ID: saleID}, nil)

	in := newSaleInput()
	in.ProductSold.SubTotal = fp(90)
	in.TotalAmount = fp(95.5)
	date := time.Date(2024, 4, 30, 18, 0, 0, 0, time.UTC)
	in.SaleDate = &date
	in.Status = "Pendiente"

	_, err := newSaleUseCase(repo, nil).Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 90.0, saved.ProductSold.SubTotal)
	assert.Equal(t, 95.5, saved.TotalAmount)
	assert.Equal(t, date, saved.SaleDate)
	assert.Equal(t, "Pendiente", saved.Status)
}

func TestSaleUseCase_Create_PropagaErrorDeBaseDeDatos(t *testing.T) {
	repo := new(mockSaleRepo)
	repo.On("NextID").Return(saleID)
	dbErr := domain.DBError("Error al guardar la venta", errors.New("connection reset"))
	repo.On("Create", mock.Anything, mock.Anything).Return("", dbErr)

	got, err := newSaleUseCase(repo, nil).Create(context.Background(), newSaleInput())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrDatabase)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestSaleUseCase_Create_SinIDDevuelveVacio(t *testing.T) {
	repo := new(mockSaleRepo)
	repo.On("NextID").Return(saleID)
	repo.On("Create", mock.Anything, mock.Anything).Return("", nil)

	got, err := newSaleUseCase(repo, nil).Create(context.Background(), newSaleInput())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaleUseCase_Create_Invalida(t *testing.T) {
	repo := new(mockSaleRepo)
	in := newSaleInput()
	in.CustomerInfo = nil

	_, err := newSaleUseCase(repo, nil).Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSaleUseCase_Update(t *testing.T) {
	stored := func() *entity.Sale {
		return &entity.Sale{ID: saleID, Status: "Completada", CreatedAt: saleClockStart.Add(-time.Hour)}
	}

	t.Run("mismo estatus", func(t *testing.T) {
		repo := new(mockSaleRepo)
		repo.On("FindByID", mock.Anything, saleID).Return(stored(), nil)

		_, err := newSaleUseCase(repo, nil).Update(context.Background(), saleID, "Completada")
		require.Error(t, err)
		assert.Equal(t, "No se detectaron cambios. La venta no fue modificada", err.Error())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("estatus vacío", func(t *testing.T) {
		repo := new(mockSaleRepo)
		repo.On("FindByID", mock.Anything, saleID).Return(stored(), nil)

		_, err := newSaleUseCase(repo, nil).Update(context.Background(), saleID, "")
		assert.Equal(t, "El campo Estatus no puede estar vacio", err.Error())
	})

	t.Run("cambio aplicado", func(t *testing.T) {
		repo := new(mockSaleRepo)
		repo.On("FindByID", mock.Anything, saleID).Return(stored(), nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(s *entity.Sale) bool {
			return s.Status == "Cancelada" && s.UpdatedAt.Equal(saleClockStart)
		})).Return(int64(1), nil)
		after := stored()
		after.Status = "Cancelada"
		repo.On("FindByID", mock.Anything, saleID).Return(after, nil).Once()

		got, err := newSaleUseCase(repo, nil).Update(context.Background(), saleID, "Cancelada")
		require.NoError(t, err)
		assert.Equal(t, "Cancelada", got.Status)
		repo.AssertExpectations(t)
	})

	t.Run("error de base de datos", func(t *testing.T) {
		repo := new(mockSaleRepo)
		repo.On("FindByID", mock.Anything, saleID).Return(stored(), nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(int64(0), domain.DBError("Error al actualizar la venta", nil))

		_, err := newSaleUseCase(repo, nil).Update(context.Background(), saleID, "Cancelada")
		assert.ErrorIs(t, err, domain.ErrDatabase)
	})
}

func TestSaleUseCase_Delete(t *testing.T) {
	repo := new(mockSaleRepo)
	repo.On("FindByID", mock.Anything, saleID).Return(&entity.Sale{ID: saleID}, nil)
	repo.On("Delete", mock.Anything, saleID).Return(int64(0), nil)

	ok, err := newSaleUseCase(repo, nil).Delete(context.Background(), saleID)
	assert.NoError(t, err)
	assert.False(t, ok)

	repo.On("FindByID", mock.Anything, "otro").Return(nil, nil)
	_, err = newSaleUseCase(repo, nil).Delete(context.Background(), "otro")
	assert.Equal(t, "No existe la venta con el identificador proporcionado", err.Error())
}

func TestSaleUseCase_Consultas(t *testing.T) {
	repo := new(mockSaleRepo)
	repo.On("List", mock.Anything, 0, 20).Return(nil, nil)
	repo.On("FindByStatus", mock.Anything, "Cancelada").Return([]*entity.Sale{{ID: saleID, Status: "Cancelada"}}, nil)
	repo.On("SearchByText", mock.Anything, "maría").Return([]*entity.Sale{}, nil)
	repo.On("Count", mock.Anything).Return(int64(7), nil)
	uc := newSaleUseCase(repo, nil)
	ctx := context.Background()

	_, err := uc.List(ctx, -1, 0)
	assert.Equal(t, "No hay ventas registradas", err.Error())

	byStatus, err := uc.ListByStatus(ctx, "Cancelada")
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	_, err = uc.Search(ctx, "maría")
	assert.Equal(t, "No se encontraron ventas con el texto proporcionado", err.Error())

	_, err = uc.ListByStatus(ctx, "")
	assert.Equal(t, "estatus de la venta es requerido", err.Error())

	n, err := uc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestSaleUseCase_Receipt(t *testing.T) {
	sale := &entity.Sale{ID: saleID, Status: "Completada"}
	repo := new(mockSaleRepo)
	repo.On("FindByID", mock.Anything, saleID).Return(sale, nil)
	receipts := new(mockReceipts)
	receipts.On("Render", sale).Return([]byte("%PDF-1.7"), nil)

	pdf, err := newSaleUseCase(repo, receipts).Receipt(context.Background(), saleID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), pdf)
	receipts.AssertExpectations(t)
}
