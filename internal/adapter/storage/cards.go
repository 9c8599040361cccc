package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/greenmart/storefront/internal/core/port"
)

var _ port.CardsStorage = (*CardsRepository)(nil)

// A CardsRepository reads the static catalog the page is rendered from.
// The catalog is loaded once at startup; there is no write path.
type CardsRepository struct {
	sqldb sqldb
}

func NewCardsRepository(sqldb sqldb) CardsRepository {
	return CardsRepository{sqldb}
}

func (r CardsRepository) LoadCards(ctx context.Context) (domain.Catalog, error) {
	const op = "CardsRepository.LoadCards"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, category, title, description
		FROM cards
		ORDER BY position ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	var catalog domain.Catalog
	for rows.Next() {
		var c domain.Card
		err := rows.Scan(&c.ID, &c.Category, &c.Title, &c.Description)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan: %w", op, err)
		}
		catalog = append(catalog, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog loaded", "nCards", len(catalog))
	return catalog, nil
}
