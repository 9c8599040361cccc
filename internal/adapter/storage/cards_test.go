package storage_test

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/greenmart/storefront/internal/adapter/storage"
	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCards(t *testing.T) {
	t.Run("LoadsOrderedCatalog", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(
			[]string{"id", "category", "title", "description"},
		).
			AddRow("1", "eco", "Bamboo Brush", "Biodegradable").
			AddRow("2", "food", "Organic Tea", "Loose leaf")

		mock.ExpectQuery("SELECT id, category, title, description").
			WillReturnRows(rows)

		repo := storage.NewCardsRepository(db)
		catalog, err := repo.LoadCards(t.Context())
		require.NoError(t, err)

		require.Len(t, catalog, 2)
		assert.Equal(t, domain.Card{
			ID: "1", Category: "eco",
			Title: "Bamboo Brush", Description: "Biodegradable",
		}, catalog[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AcceptsSQLDB", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT id, category, title, description").
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "category", "title", "description"},
			).AddRow("1", "eco", "Bamboo Brush", "Biodegradable"))

		repo := storage.NewCardsRepository(storage.SQLDB{DB: db})
		catalog, err := repo.LoadCards(t.Context())
		require.NoError(t, err)
		assert.Len(t, catalog, 1)
	})

	t.Run("EmptyTable", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT id, category, title, description").
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "category", "title", "description"},
			))

		repo := storage.NewCardsRepository(db)
		catalog, err := repo.LoadCards(t.Context())
		require.NoError(t, err)
		assert.Empty(t, catalog)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT id, category, title, description").
			WillReturnError(errors.New("boom"))

		repo := storage.NewCardsRepository(db)
		_, err = repo.LoadCards(t.Context())
		assert.Error(t, err)
	})
}
