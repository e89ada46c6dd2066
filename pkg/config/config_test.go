package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_NivelDeLogDesdeEntorno(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DatabaseURLTienePrioridadSobreDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/catalogo?sslmode=require")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/catalogo?sslmode=require", cfg.DB.ConnectionString())
}

func TestDSN_EscapaCaracteresEspeciales(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss/word",
		DBName: "catalogo", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword", "la contraseña debe ir URL-escapada")
	assert.Contains(t, dsn, "sslmode=disable")
}
