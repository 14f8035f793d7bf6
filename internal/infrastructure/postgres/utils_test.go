package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/pkg/config"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "staff_email_uniq"}
	wrapped := fmt.Errorf("insert staff: %w", pgErr)

	assert.True(t, isUniqueViolation(wrapped))
	assert.Equal(t, "staff_email_uniq", violatedConstraint(wrapped))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.Empty(t, violatedConstraint(errors.New("otro")))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, isNoRows(errors.New("timeout")))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `ana\_p\%`, escapeLike("ana_p%"))
}

func TestPoolConfig_AplicaLimitesYCodec(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL:    "postgres://app:secreto@db:5432/stock?sslmode=disable",
		MaxConns:       10,
		MinConns:       3,
		ConnectTimeout: 5 * time.Second,
		ForceIPv4:      true,
	}
	poolCfg, err := poolConfig(cfg)
	require.NoError(t, err)

	assert.EqualValues(t, 10, poolCfg.MaxConns)
	assert.EqualValues(t, 3, poolCfg.MinConns)
	assert.Equal(t, 5*time.Second, poolCfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, "db", poolCfg.ConnConfig.Host)
	assert.NotNil(t, poolCfg.ConnConfig.DialFunc)
	assert.NotNil(t, poolCfg.AfterConnect)
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := poolConfig(config.DBConfig{DatabaseURL: "postgres://app@db:puerto/stock"})
	assert.Error(t, err)
}
