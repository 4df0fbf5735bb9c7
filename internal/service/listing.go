package service

import (
	"context"
	"errors"
	"strings"

	"github.com/DoaaAltair/Elite-Home/internal/cache"
	dom "github.com/DoaaAltair/Elite-Home/internal/domain"
	"github.com/DoaaAltair/Elite-Home/internal/dto"
	"github.com/DoaaAltair/Elite-Home/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound         = errors.New("apartment not found")
	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
	ErrMissingRequired  = errors.New("missing required fields")
)

// ListingService owns the apartment record contract: creation defaults,
// field-level partial updates and the household done-mark toggle.
type ListingService struct {
	repo  repo.ApartmentRepo
	cache *cache.ListingCache
	sf    singleflight.Group
}

// NewListingService creates a ListingService. If c is nil, caching is disabled.
func NewListingService(r repo.ApartmentRepo, c *cache.ListingCache) *ListingService {
	return &ListingService{repo: r, cache: c}
}

// Create inserts a new apartment. Type, agent and number are required;
// everything else defaults (status to "empty", text fields to "").
func (s *ListingService) Create(ctx context.Context, req dto.CreateApartmentRequest) (dom.Apartment, error) {
	a := dom.Apartment{
		Type:        strings.TrimSpace(req.Type),
		Agent:       strings.TrimSpace(req.Agent),
		Number:      strings.TrimSpace(req.Number),
		Description: req.Description,
		Status:      req.Status,
		Household:   req.Household,
		Photo:       req.Photo,
	}
	if a.Type == "" || a.Agent == "" || a.Number == "" {
		return dom.Apartment{}, ErrMissingRequired
	}
	if a.Status == "" {
		a.Status = dom.StatusEmpty
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return dom.Apartment{}, err
	}
	s.invalidateCache(ctx)
	return created, nil
}

// List returns all apartments, newest first.
func (s *ListingService) List(ctx context.Context) ([]dom.Apartment, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Apartment), nil
	}
	return s.repo.List(ctx)
}

func (s *ListingService) GetByID(ctx context.Context, id int64) (dom.Apartment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Apartment{}, ErrNotFound
		}
		return dom.Apartment{}, err
	}
	return a, nil
}

// Update applies the supplied fields over the stored record and leaves the
// rest untouched. The row is read first, so an update to a missing id is
// not-found rather than a silent no-op; the write itself re-checks via
// RETURNING in case the row is deleted in between.
func (s *ListingService) Update(ctx context.Context, id int64, patch dto.UpdateApartmentRequest) (dom.Apartment, error) {
	if patch.Empty() {
		return dom.Apartment{}, ErrNoFieldsToUpdate
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Apartment{}, ErrNotFound
		}
		return dom.Apartment{}, err
	}
	next := existing
	if patch.Type != nil {
		next.Type = *patch.Type
	}
	if patch.Agent != nil {
		next.Agent = strings.TrimSpace(*patch.Agent)
	}
	if patch.Number != nil {
		next.Number = strings.TrimSpace(*patch.Number)
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Status != nil {
		next.Status = *patch.Status
	}
	if patch.Household != nil {
		// Full replacement: any done mark in the old value is gone unless
		// the caller sent one.
		next.Household = *patch.Household
	}
	if patch.Photo != nil {
		next.Photo = *patch.Photo
	}

	updated, err := s.repo.Update(ctx, id, next)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Apartment{}, ErrNotFound
		}
		return dom.Apartment{}, err
	}
	s.invalidateCache(ctx)
	return updated, nil
}

// Delete removes the record. Zero rows affected means not-found.
func (s *ListingService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx)
	return nil
}

// SetHouseholdDone toggles the done mark on the household note. The current
// value is re-read at call time, so the freshest note wins; concurrent
// toggles on the same id resolve last-writer-wins.
func (s *ListingService) SetHouseholdDone(ctx context.Context, id int64, done bool) (dom.Apartment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Apartment{}, ErrNotFound
		}
		return dom.Apartment{}, err
	}

	updated, err := s.repo.SetHousehold(ctx, id, dom.SetHouseholdDone(a.Household, done))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Apartment{}, ErrNotFound
		}
		return dom.Apartment{}, err
	}
	s.invalidateCache(ctx)
	return updated, nil
}

func (s *ListingService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
