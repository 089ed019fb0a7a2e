package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MySQLMissingFields(t *testing.T) {
	conf := Config{DBDriver: "mysql", DBHost: "localhost"}

	err := conf.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.NotContains(t, err.Error(), "DB_HOST")
}

func TestValidate_MySQLComplete(t *testing.T) {
	conf := Config{
		DBDriver:   "mysql",
		DBHost:     "localhost",
		DBPort:     "3306",
		DBUser:     "baby",
		DBPassword: "secret",
		DBName:     "babyrecord",
	}
	assert.NoError(t, conf.Validate())
}

func TestValidate_SQLite(t *testing.T) {
	assert.Error(t, (&Config{DBDriver: "sqlite"}).Validate())
	assert.NoError(t, (&Config{DBDriver: "sqlite", DBPath: "baby.db"}).Validate())
}

func TestValidate_UnknownDriver(t *testing.T) {
	err := (&Config{DBDriver: "oracle"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestGetDBConnString(t *testing.T) {
	conf := Config{
		DBDriver:   "mysql",
		DBHost:     "localhost",
		DBPort:     "3306",
		DBUser:     "baby",
		DBPassword: "secret",
		DBName:     "babyrecord",
	}
	assert.Equal(t,
		"baby:secret@tcp(localhost:3306)/babyrecord?charset=utf8mb4&parseTime=True&loc=Local",
		conf.GetDBConnString())
}
