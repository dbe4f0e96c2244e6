package store

import (
	"testing"

	"github.com/MKhiriev/item-api/internal/config"
	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{dialect: config.DriverPostgres, want: "SELECT id FROM item WHERE id = $1"},
		{dialect: config.DriverSQLite, want: "SELECT id FROM item WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())

			query, args, err := db.builder.Select("id").From("item").Where(squirrel.Eq{"id": 1}).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{1}, args)
		})
	}
}
