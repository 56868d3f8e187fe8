package postgres

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDB(t *testing.T) {
	originalDB := DB

	testDB, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer testDB.Close()

	DB = testDB

	// GetDB возвращает установленное соединение
	assert.Equal(t, DB, GetDB())

	DB = originalDB
}

func TestInitDBWithConnection(t *testing.T) {
	originalDB := DB

	testDB, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer testDB.Close()

	// Устанавливаем соединение через функцию
	InitDBWithConnection(testDB)
	assert.Equal(t, testDB, DB)

	DB = originalDB
}

func TestCloseDBWithNilDB(t *testing.T) {
	originalDB := DB

	// CloseDB без соединения не паникует и возвращает nil
	DB = nil
	err := CloseDB()
	assert.NoError(t, err)

	DB = originalDB
}

// Примечание: тесты InitDB/CloseDB с реальным подключением не включены - им нужна настоящая PostgreSQL база.
