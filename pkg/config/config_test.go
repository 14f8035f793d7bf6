package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, config.StoreMongo, cfg.Store.Driver)
	assert.Equal(t, config.MailLog, cfg.Mail.Driver)
	assert.Equal(t, 200, cfg.Stock.LowThreshold)
	assert.Equal(t, 100, cfg.Stock.CriticalThreshold)
	assert.Equal(t, 3, cfg.Stock.MaxRetries)
	assert.Equal(t, "session", cfg.JWT.CookieName)
	assert.Equal(t, 15*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "Postgres")
	v.Set("HTTP_PORT", "9090")
	v.Set("STOCK_LOW_THRESHOLD", "300")
	v.Set("MAIL_DRIVER", "sendgrid")
	v.Set("SENDGRID_API_KEY", "SG.test")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, config.StorePostgres, cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 300, cfg.Stock.LowThreshold)
	assert.Equal(t, config.MailSendGrid, cfg.Mail.Driver)
}

func TestFromViper_DriverSinCredenciales(t *testing.T) {
	cases := map[string]map[string]string{
		"sendgrid sin api key": {"MAIL_DRIVER": "sendgrid"},
		"mailgun sin dominio":  {"MAIL_DRIVER": "mailgun", "MAILGUN_API_KEY": "key"},
		"relay sin usuario":    {"MAIL_DRIVER": "relay"},
		"mail desconocido":     {"MAIL_DRIVER": "paloma"},
		"store desconocido":    {"STORE_DRIVER": "excel"},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			for k, val := range values {
				v.Set(k, val)
			}
			_, err := config.FromViper(v)
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_DSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "stock", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/stock?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
