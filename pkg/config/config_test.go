package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSNEncodesPassword(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word#1",
		DBName:   "gestor_autopecas",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word#1")
}

func TestConnectionStringPrefersDatabaseURL(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgres://u:p@db:5432/x?sslmode=require",
		Host:        "localhost",
		Port:        5432,
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())
}

func TestHTTPAddr(t *testing.T) {
	cfg := HTTPConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
