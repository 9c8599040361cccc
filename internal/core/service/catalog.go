package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/greenmart/storefront/internal/core/port"
	"github.com/greenmart/storefront/pkg/debounce"
)

var _ port.CatalogFilterer = (*CatalogService)(nil)

// SearchDebounce is the quiescence interval applied to search input
// before the filter is evaluated.
const SearchDebounce = 300 * time.Millisecond

type gridSurface interface {
	port.GridRenderer
	port.FilterControls
}

// A CatalogService holds the catalog and the current filter mode and
// applies visibility decisions to the page's grid surface.
//
// Category selection and free-text search are mutually resetting:
// selecting a category clears the search control, searching resets the
// category controls to the "all" indicator. During search mode the "all"
// highlight is display-only; no category is tracked as selected.
type CatalogService struct {
	mu           sync.Mutex
	catalog      domain.Catalog
	mode         domain.FilterMode
	gen          uint64
	grid         gridSurface
	interactions port.InteractionsProducer
	deb          *debounce.Debouncer
}

func NewCatalog(
	catalog domain.Catalog,
	grid gridSurface,
	interactions port.InteractionsProducer,
	debounceInterval time.Duration,
) *CatalogService {
	return &CatalogService{
		catalog:      catalog,
		mode:         domain.DefaultMode(),
		grid:         grid,
		interactions: interactions,
		deb:          debounce.New(debounceInterval),
	}
}

// FilterByCategory applies the category filter immediately. Any pending
// debounced search is cancelled and the search control is cleared.
func (s *CatalogService) FilterByCategory(ctx context.Context, tag string) error {
	const op = "CatalogService.FilterByCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.deb.Stop()

	s.mu.Lock()
	s.gen++ // invalidates a debounced search whose timer already fired
	s.mode = domain.CategoryMode(tag)
	vs := domain.ComputeVisibility(s.catalog, s.mode)
	s.grid.ApplyVisibility(vs, true)
	s.grid.SetSearchValue("")
	s.grid.SelectCategory(tag)
	s.mu.Unlock()

	s.emit(ctx, domain.InteractionFilterCategory, tag)
	return nil
}

// SearchInput registers a keystroke-level change of the search box.
// The filter evaluates once after the debounce interval of silence,
// using the value of the last call.
func (s *CatalogService) SearchInput(ctx context.Context, term string) error {
	const op = "CatalogService.SearchInput"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	evalCtx := context.WithoutCancel(ctx)
	s.deb.Do(func() {
		if err := s.searchAt(evalCtx, term, gen); err != nil {
			slog.Error("debounced search failed", "op", op, "err", err)
		}
	})
	return nil
}

// FilterBySearch applies the search filter immediately.
func (s *CatalogService) FilterBySearch(ctx context.Context, term string) error {
	const op = "CatalogService.FilterBySearch"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	normalized := s.applySearchLocked(term)
	s.mu.Unlock()

	s.emit(ctx, domain.InteractionSearch, normalized)
	return nil
}

// searchAt applies a debounced search unless a category filter has been
// selected since the search was scheduled. Stop on the debouncer does not
// cover a timer that fired and is already waiting on the mutex, so the
// generation is re-checked under the lock.
func (s *CatalogService) searchAt(
	ctx context.Context, term string, gen uint64,
) error {
	const op = "CatalogService.searchAt"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return nil
	}
	normalized := s.applySearchLocked(term)
	s.mu.Unlock()

	s.emit(ctx, domain.InteractionSearch, normalized)
	return nil
}

// applySearchLocked is called with s.mu held.
func (s *CatalogService) applySearchLocked(term string) (normalized string) {
	s.mode = domain.SearchMode(term)
	vs := domain.ComputeVisibility(s.catalog, s.mode)
	s.grid.ApplyVisibility(vs, true)
	s.grid.SetSearchValue(term)
	s.grid.SelectCategory(domain.CategoryAll)
	normalized, _ = s.mode.Search()
	return normalized
}

// Mode reports the current logical filter mode.
func (s *CatalogService) Mode() domain.FilterMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// emit sends the interaction to the analytics stream. Emission is
// best-effort: a broker failure never blocks the page.
func (s *CatalogService) emit(
	ctx context.Context, kind domain.InteractionKind, value string,
) {
	const op = "CatalogService.emit"

	evt := domain.Interaction{
		ID:         uuid.NewString(),
		Kind:       kind,
		Value:      value,
		OccurredAt: time.Now(),
	}
	if err := s.interactions.ProduceInteraction(ctx, evt); err != nil {
		slog.Warn("failed to produce interaction", "op", op, "err", err)
	}
}
