package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/habitplan-backend/internal/config"
)

func TestPoolConfig(t *testing.T) {
	t.Parallel()

	base := config.DatabaseConfig{
		MaxConns:        8,
		MinConns:        2,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 5 * time.Minute,
	}

	t.Run("applies limits and tags sessions", func(t *testing.T) {
		t.Parallel()

		cfg := base
		cfg.DSN = "postgres://u:p@localhost:5432/habitplan"
		pc, err := poolConfig(cfg)
		require.NoError(t, err)

		assert.Equal(t, int32(8), pc.MaxConns)
		assert.Equal(t, int32(2), pc.MinConns)
		assert.Equal(t, time.Hour, pc.MaxConnLifetime)
		assert.Equal(t, 5*time.Minute, pc.MaxConnIdleTime)
		assert.Equal(t, "habitplan", pc.ConnConfig.RuntimeParams["application_name"])
	})

	t.Run("keeps application name from dsn", func(t *testing.T) {
		t.Parallel()

		cfg := base
		cfg.DSN = "postgres://u:p@localhost:5432/habitplan?application_name=worker"
		pc, err := poolConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, "worker", pc.ConnConfig.RuntimeParams["application_name"])
	})

	t.Run("bad dsn", func(t *testing.T) {
		t.Parallel()

		cfg := base
		cfg.DSN = "postgres://u:p@localhost:notaport/db"
		_, err := poolConfig(cfg)
		assert.Error(t, err)
	})
}
