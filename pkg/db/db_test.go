package db

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/reviewservice/pkg/metrics"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Driver:             "sqlite",
		DSN:                filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns:       1,
		MaxIdleConns:       1,
		ConnMaxLifetime:    300,
		SlowQueryThreshold: 1000,
	}
}

func TestInit_UnsupportedDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Driver = "mysql"

	_, err := Init(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestTrace_RecordsQueryMetrics(t *testing.T) {
	m := metrics.New("dbtest")

	database, err := Init(testConfig(t), m)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.DB.Exec("CREATE TABLE notes (id INTEGER PRIMARY KEY)").Error)
	require.NoError(t, database.DB.Exec("INSERT INTO notes (id) VALUES (1)").Error)

	assert.GreaterOrEqual(t, testutil.ToFloat64(m.DBQueriesTotal), float64(2))
	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
}

func TestTrace_NilMetricsIsSafe(t *testing.T) {
	database, err := Init(testConfig(t), nil)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.DB.Exec("CREATE TABLE notes (id INTEGER PRIMARY KEY)").Error)
}
