package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMongo, cfg.Store.Driver)
	assert.Equal(t, NotifierLog, cfg.Notifier.Driver)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, 32, cfg.Security.ActivationKeyLength)
	assert.Equal(t, 90*24*time.Hour, cfg.Security.PasswordExpiry())
	assert.Equal(t, "notifications", cfg.Notifier.Kafka.Topic)
	assert.Equal(t, time.Hour, cfg.ReconcileInterval)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Superuser.Enabled)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("NOTIFIER_DRIVER", "kafka")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("RECONCILE_INTERVAL", "0")
	t.Setenv("NOTIFIER_TIMEOUT", "2s")
	t.Setenv("SUPERUSER_INIT_ENABLE", "true")
	t.Setenv("SUPERUSER_PASSWORD", "Secret#1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.Store.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Notifier.Kafka.Brokers)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Zero(t, cfg.ReconcileInterval)
	assert.Equal(t, 2*time.Second, cfg.Notifier.Timeout)
	assert.True(t, cfg.Superuser.Enabled)
}

func TestLoad_RechazaDriversDesconocidos(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	_, err := Load()
	assert.ErrorContains(t, err, "STORE_DRIVER")
}

func TestLoad_RechazaNotificadorDesconocido(t *testing.T) {
	t.Setenv("NOTIFIER_DRIVER", "sms")
	_, err := Load()
	assert.ErrorContains(t, err, "NOTIFIER_DRIVER")
}

func TestLoad_RechazaCosteBcryptFueraDeRango(t *testing.T) {
	for _, cost := range []string{"3", "32"} {
		t.Run(cost, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", cost)
			_, err := Load()
			assert.ErrorContains(t, err, "BCRYPT_COST")
		})
	}
}

func TestLoad_SuperusuarioSinPassword(t *testing.T) {
	t.Setenv("SUPERUSER_INIT_ENABLE", "true")
	_, err := Load()
	assert.ErrorContains(t, err, "SUPERUSER_PASSWORD")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "customers", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/customers?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
