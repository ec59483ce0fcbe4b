package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yukikurage/volunteer-directory-api/internal/cache"
	"github.com/yukikurage/volunteer-directory-api/internal/metrics"
	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"github.com/yukikurage/volunteer-directory-api/internal/repository"
	"go.uber.org/zap"
)

// LookupService serves one lookup table. Full listings are cached; id
// lookups always hit the store.
type LookupService[T any] struct {
	table    string
	repo     repository.LookupRepository[T]
	cache    cache.LookupCache
	metrics  *metrics.Metrics
	log      *zap.Logger
	validate func(*T) error
}

func newLookupService[T any](
	table string,
	repo repository.LookupRepository[T],
	lookupCache cache.LookupCache,
	m *metrics.Metrics,
	log *zap.Logger,
	validate func(*T) error,
) *LookupService[T] {
	return &LookupService[T]{
		table:    table,
		repo:     repo,
		cache:    lookupCache,
		metrics:  m,
		log:      log.With(zap.String("table", table)),
		validate: validate,
	}
}

// List returns the rows whose id is in ids, or every row when ids is empty
func (s *LookupService[T]) List(ctx context.Context, ids []string) ([]T, error) {
	if len(ids) > 0 {
		items, err := s.repo.ListByIDs(ctx, ids)
		if err != nil {
			return nil, storeFailure(s.log, s.metrics, "list_"+s.table, err)
		}
		return items, nil
	}

	var items []T
	hit, err := s.cache.Get(ctx, s.table, &items)
	if err != nil {
		s.log.Warn("lookup cache read failed", zap.Error(err))
	}
	s.metrics.ObserveLookupCache(s.table, hit)
	if hit {
		return items, nil
	}

	items, err = s.repo.ListAll(ctx)
	if err != nil {
		return nil, storeFailure(s.log, s.metrics, "list_"+s.table, err)
	}

	if err := s.cache.Set(ctx, s.table, items); err != nil {
		s.log.Warn("lookup cache write failed", zap.Error(err))
	}
	return items, nil
}

// Add inserts a row and drops the cached listing
func (s *LookupService[T]) Add(ctx context.Context, item *T) error {
	if err := s.validate(item); err != nil {
		return err
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return storeFailure(s.log, s.metrics, "add_"+s.table, err)
	}

	if err := s.cache.Invalidate(ctx, s.table); err != nil {
		s.log.Warn("lookup cache invalidation failed", zap.Error(err))
	}
	return nil
}

// ensureExist fails with ErrUnknownReference unless every id is a row of
// this table
func (s *LookupService[T]) ensureExist(ctx context.Context, ids []string) error {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	count, err := s.repo.CountByIDs(ctx, ids)
	if err != nil {
		return storeFailure(s.log, s.metrics, "count_"+s.table, err)
	}
	if count != int64(len(ids)) {
		return fmt.Errorf("%w: %d of %d %s ids do not exist", ErrUnknownReference, int64(len(ids))-count, len(ids), s.table)
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func requireTitle(title *string) error {
	*title = strings.TrimSpace(*title)
	if *title == "" {
		return ErrTitleRequired
	}
	return nil
}

func validateCity(c *models.City) error             { return requireTitle(&c.Title) }
func validateActivity(a *models.Activity) error     { return requireTitle(&a.Title) }
func validateSocial(p *models.SocialProvider) error { return requireTitle(&p.Title) }
func validatePayment(p *models.PaymentProvider) error {
	return requireTitle(&p.Title)
}
func validateContact(p *models.ContactProvider) error {
	return requireTitle(&p.Title)
}
