package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"APP_ADDR", "CONFIG_FILE", "JWT_EXPIRE", "SEED_ON_START", "DB_PASSWORD", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ":5000", env.AppAddr)
	assert.Equal(t, "travel_mitr", env.DB.Name)
	assert.Equal(t, 24*time.Hour, env.JWTExpire)
	assert.True(t, env.SeedOnStart)
	assert.Equal(t, 5.0, env.OptimizeRatePerSec)
}

func TestLoadEnvYAMLThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app_addr: ":7000"
jwt_expire: 2h
database:
  host: db.internal
  name: mitr_test
geo_enabled: true
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", env.AppAddr, "env beats yaml")
	assert.Equal(t, 2*time.Hour, env.JWTExpire)
	assert.Equal(t, "db.internal", env.DB.Host)
	assert.Equal(t, "mitr_test", env.DB.Name)
	assert.True(t, env.GeoEnabled)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, env.CORSAllowedOrigins)
}

func TestLoadEnvDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OPTIMIZE_RATE_BURST=3\n"), 0o600))
	t.Setenv("OPTIMIZE_RATE_BURST", "")
	os.Unsetenv("OPTIMIZE_RATE_BURST")
	t.Cleanup(func() { os.Unsetenv("OPTIMIZE_RATE_BURST") })

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, env.OptimizeRateBurst)
}

func TestLoadEnvInvalidDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_EXPIRE", "soon")
	_, err := LoadEnv()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	dsn := DBConfig{Host: "127.0.0.1", Port: "3306", User: "root", Password: "pw", Name: "travel_mitr"}.DSN()
	assert.Contains(t, dsn, "root:pw@tcp(127.0.0.1:3306)/travel_mitr")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "readTimeout=30s")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for _, table := range Tables() {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table + " ").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
