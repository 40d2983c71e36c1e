package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/destinity-erp/internal/application/auth"
	"github.com/jhoicas/destinity-erp/internal/application/dto"
	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
	"github.com/jhoicas/destinity-erp/internal/domain/repository"
	"github.com/jhoicas/destinity-erp/pkg/jwt"
	"github.com/jhoicas/destinity-erp/pkg/password"
)

const testSecret = "test-secret-key-for-unit-tests"

// userRepoStub solo implementa FindByEmail; el resto de métodos no se usan en login.
type userRepoStub struct {
	repository.UserRepository
	mock.Mock
}

func (m *userRepoStub) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func hashed(t *testing.T, plain string) string {
	t.Helper()
	h, err := password.NewHasher(bcrypt.MinCost).Hash(plain)
	require.NoError(t, err)
	return h
}

func newAuth(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, password.NewHasher(bcrypt.MinCost), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 480,
		Issuer:     "destinity-erp-test",
	}, nil)
}

func TestLogin_Empleado(t *testing.T) {
	user := &entity.User{
		ID:           "64b7f0c2a1b2c3d4e5f60718",
		FirstName:    "Ana",
		LastName:     "López",
		Email:        "ana@x.com",
		PasswordHash: hashed(t, "secreto12"),
		Details:      &entity.EmployeeData{Role: "Gerente", Department: "Ventas", Salary: 1000},
	}
	repo := new(userRepoStub)
	repo.On("FindByEmail", mock.Anything, "ana@x.com").Return(user, nil)

	resp, err := newAuth(repo).Login(context.Background(), dto.LoginRequest{Email: "ana@x.com", Password: "secreto12"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID())
	assert.Equal(t, "Gerente", claims.Role)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "Ana López", claims.Name, "el nombre omite partes vacías")
}

func TestLogin_ProveedorTieneRolProvider(t *testing.T) {
	user := &entity.User{
		ID:           "64b7f0c2a1b2c3d4e5f60719",
		FirstName:    "Luis",
		LastName:     "Pérez",
		MiddleName:   "Ruiz",
		Email:        "luis@prov.mx",
		PasswordHash: hashed(t, "proveedor1"),
		Details:      &entity.ProviderData{Company: "Telas SA", ServiceType: "Textil", Phone: "5512345678"},
	}
	repo := new(userRepoStub)
	repo.On("FindByEmail", mock.Anything, "luis@prov.mx").Return(user, nil)

	resp, err := newAuth(repo).Login(context.Background(), dto.LoginRequest{Email: "luis@prov.mx", Password: "proveedor1"})
	require.NoError(t, err)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeProvider, claims.Role)
	assert.Equal(t, "Luis Pérez Ruiz", claims.Name)
}

func TestLogin_MismoErrorParaCorreoYContraseña(t *testing.T) {
	user := &entity.User{ID: "u1", Email: "ana@x.com", PasswordHash: hashed(t, "secreto12"), Details: &entity.EmployeeData{Role: "Gerente"}}
	repo := new(userRepoStub)
	repo.On("FindByEmail", mock.Anything, "ana@x.com").Return(user, nil)
	repo.On("FindByEmail", mock.Anything, "nadie@x.com").Return(nil, nil)
	uc := newAuth(repo)

	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@x.com", Password: "otra-clave"})
	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@x.com", Password: "secreto12"})

	require.Error(t, errWrongPass)
	require.Error(t, errUnknown)
	assert.ErrorIs(t, errWrongPass, domain.ErrNotFound)
	assert.ErrorIs(t, errUnknown, domain.ErrNotFound)
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
	assert.Equal(t, "Credenciales inválidas, correo o contraseña incorrectas", errUnknown.Error())
}

func TestLogin_ErrorDeBaseDeDatos(t *testing.T) {
	repo := new(userRepoStub)
	repo.On("FindByEmail", mock.Anything, "ana@x.com").Return(nil, domain.DBError("Error al consultar el usuario", nil))

	_, err := newAuth(repo).Login(context.Background(), dto.LoginRequest{Email: "ana@x.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrDatabase)
}

func TestLogin_CorreoVacio(t *testing.T) {
	repo := new(userRepoStub)

	_, err := newAuth(repo).Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestMe(t *testing.T) {
	token, err := jwt.Generate(testSecret, jwt.Identity{UserID: "u1", Role: "Gerente", Email: "ana@x.com", Name: "Ana"}, "", 5)
	require.NoError(t, err)
	claims, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)

	me := newAuth(new(userRepoStub)).Me(claims)
	assert.Equal(t, &dto.MeResponse{UserID: "u1", Role: "Gerente", Email: "ana@x.com", Name: "Ana"}, me)
}
