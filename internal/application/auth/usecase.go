package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/destinity-erp/internal/application/dto"
	"github.com/jhoicas/destinity-erp/internal/domain"
	"github.com/jhoicas/destinity-erp/internal/domain/entity"
	"github.com/jhoicas/destinity-erp/internal/domain/repository"
	"github.com/jhoicas/destinity-erp/pkg/jwt"
	"github.com/jhoicas/destinity-erp/pkg/logger"
)

const invalidCredentials = "Credenciales inválidas, correo o contraseña incorrectas"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// PasswordChecker compara una contraseña con su hash.
type PasswordChecker interface {
	Check(hash, plain string) bool
}

// AuthUseCase caso de uso de autenticación: login con correo y contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	checker  PasswordChecker
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth. log puede ser nil.
func NewAuthUseCase(userRepo repository.UserRepository, checker PasswordChecker, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, checker: checker, jwtCfg: jwtCfg, log: log.Named("auth_usecase")}
}

// Login verifica correo y contraseña y emite un JWT. Correo inexistente y
// contraseña incorrecta producen el mismo NOT_FOUND.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, domain.InvalidInput("correo", "del usuario")
	}
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.checker.Check(user.PasswordHash, in.Password) {
		uc.log.Warn().Str("email", in.Email).Msg("credenciales inválidas")
		return nil, domain.NotFound(invalidCredentials)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, IdentityOf(user), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("inicio de sesión")
	return &dto.LoginResponse{Token: token}, nil
}

// Me proyecta los claims de un token ya verificado.
func (uc *AuthUseCase) Me(claims *jwt.Claims) *dto.MeResponse {
	if claims == nil {
		return nil
	}
	return &dto.MeResponse{
		UserID: claims.UserID(),
		Role:   claims.Role,
		Email:  claims.Email,
		Name:   claims.Name,
	}
}

// IdentityOf arma los claims del usuario: el rol es el del empleado o
// "provider" para proveedores.
func IdentityOf(u *entity.User) jwt.Identity {
	role := ""
	switch d := u.Details.(type) {
	case *entity.EmployeeData:
		role = d.Role
	case *entity.ProviderData:
		role = entity.UserTypeProvider
	}
	return jwt.Identity{
		UserID: u.ID,
		Role:   role,
		Email:  u.Email,
		Name:   u.FullName(),
	}
}
