package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"bizdash-core/config"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "bizdash",
		Password: "secret",
		DBName:   "dispatch",
		SSLMode:  "disable",
		MaxConns: 8,
		MinConns: 2,
	}
}

func TestPoolConfig_MapsSettings(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.ConnMaxLifetime = 15 * time.Minute

	poolCfg, err := poolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", poolCfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), poolCfg.ConnConfig.Port)
	assert.Equal(t, "dispatch", poolCfg.ConnConfig.Database)
	assert.Equal(t, int32(8), poolCfg.MaxConns)
	assert.Equal(t, int32(2), poolCfg.MinConns)
	assert.Equal(t, 15*time.Minute, poolCfg.MaxConnLifetime)
}

func TestPoolConfig_ZeroLifetimeKeepsDefault(t *testing.T) {
	poolCfg, err := poolConfig(testDatabaseConfig())
	require.NoError(t, err)

	assert.Greater(t, poolCfg.MaxConnLifetime, time.Duration(0))
}

func TestPoolConfig_BadSSLMode(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.SSLMode = "sometimes"

	_, err := poolConfig(cfg)
	assert.ErrorContains(t, err, "parsing database config")
}

func TestEnsureSchema_CreatesTableAndIndex(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`(?s)CREATE TABLE IF NOT EXISTS webhook_dispatch_logs.*CREATE INDEX IF NOT EXISTS idx_webhook_dispatch_logs_type_finished`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, EnsureSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS webhook_dispatch_logs").
		WillReturnError(errors.New("permission denied for schema public"))

	err = EnsureSchema(context.Background(), mock)
	assert.ErrorContains(t, err, "ensure schema")
	assert.ErrorContains(t, err, "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}
