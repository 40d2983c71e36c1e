package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "destinity-erp", cfg.App.Name)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, 480, cfg.JWT.Expiration)
	assert.Equal(t, 10, cfg.Bcrypt.Cost)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.HTTP.AuthRequired)
}

func TestFromViper_Sobrescritura(t *testing.T) {
	v := viper.New()
	v.Set("MONGO_DATABASE", "erp_test")
	v.Set("HTTP_PORT", "9090")
	v.Set("HTTP_AUTH_REQUIRED", "true")
	v.Set("BCRYPT_COST", "abc")

	cfg := fromViper(v)

	assert.Equal(t, "erp_test", cfg.Mongo.Database)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.HTTP.AuthRequired)
	assert.Equal(t, 10, cfg.Bcrypt.Cost, "un entero inválido conserva el valor por defecto")
}

func TestValidate(t *testing.T) {
	cfg := fromViper(viper.New())
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET es requerido")

	cfg.JWT.Secret = "s3cr3t"
	assert.NoError(t, cfg.Validate())

	cfg.Bcrypt.Cost = 2
	assert.ErrorContains(t, cfg.Validate(), "BCRYPT_COST")
}
