package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	dom "github.com/DoaaAltair/Elite-Home/internal/domain"
	"github.com/DoaaAltair/Elite-Home/internal/dto"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memApartmentRepo is an in-memory ApartmentRepo for service tests.
type memApartmentRepo struct {
	nextID int64
	rows   map[int64]dom.Apartment
}

func newMemApartmentRepo() *memApartmentRepo {
	return &memApartmentRepo{rows: map[int64]dom.Apartment{}}
}

func (r *memApartmentRepo) Create(_ context.Context, a dom.Apartment) (dom.Apartment, error) {
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	r.rows[a.ID] = a
	return a, nil
}

func (r *memApartmentRepo) GetByID(_ context.Context, id int64) (dom.Apartment, error) {
	a, ok := r.rows[id]
	if !ok {
		return dom.Apartment{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *memApartmentRepo) List(_ context.Context) ([]dom.Apartment, error) {
	var list []dom.Apartment
	for _, a := range r.rows {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *memApartmentRepo) Update(_ context.Context, id int64, a dom.Apartment) (dom.Apartment, error) {
	cur, ok := r.rows[id]
	if !ok {
		return dom.Apartment{}, pgx.ErrNoRows
	}
	a.ID = cur.ID
	a.CreatedAt = cur.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	r.rows[id] = a
	return a, nil
}

func (r *memApartmentRepo) SetHousehold(_ context.Context, id int64, household string) (dom.Apartment, error) {
	a, ok := r.rows[id]
	if !ok {
		return dom.Apartment{}, pgx.ErrNoRows
	}
	a.Household = household
	a.UpdatedAt = time.Now().UTC()
	r.rows[id] = a
	return a, nil
}

func (r *memApartmentRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

// errApartmentRepo fails every operation with the same store error.
type errApartmentRepo struct{ err error }

func (r errApartmentRepo) Create(context.Context, dom.Apartment) (dom.Apartment, error) {
	return dom.Apartment{}, r.err
}

func (r errApartmentRepo) GetByID(context.Context, int64) (dom.Apartment, error) {
	return dom.Apartment{}, r.err
}

func (r errApartmentRepo) List(context.Context) ([]dom.Apartment, error) {
	return nil, r.err
}

func (r errApartmentRepo) Update(context.Context, int64, dom.Apartment) (dom.Apartment, error) {
	return dom.Apartment{}, r.err
}

func (r errApartmentRepo) SetHousehold(context.Context, int64, string) (dom.Apartment, error) {
	return dom.Apartment{}, r.err
}

func (r errApartmentRepo) Delete(context.Context, int64) (bool, error) {
	return false, r.err
}

func strPtr(s string) *string { return &s }

func TestCreateAppliesDefaults(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateApartmentRequest{
		Type: dom.TypeRent, Agent: "Sam", Number: "12B",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, dom.TypeRent, got.Type)
	assert.Equal(t, "Sam", got.Agent)
	assert.Equal(t, "12B", got.Number)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, dom.StatusEmpty, got.Status)
	assert.Equal(t, "", got.Household)
	assert.Equal(t, "", got.Photo)
}

func TestCreateEchoesInput(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateApartmentRequest{
		Type:        dom.TypeSale,
		Agent:       "Noor",
		Number:      "7A",
		Description: "two bedrooms",
		Status:      dom.StatusRented,
		Household:   "keys with the neighbour",
		Photo:       "https://img.example/7a.jpg",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "two bedrooms", got.Description)
	assert.Equal(t, dom.StatusRented, got.Status)
	assert.Equal(t, "keys with the neighbour", got.Household)
	assert.Equal(t, "https://img.example/7a.jpg", got.Photo)
}

func TestCreateRequiresFields(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateApartmentRequest{Agent: "Sam", Number: "12B"})
	assert.ErrorIs(t, err, ErrMissingRequired)

	_, err = svc.Create(ctx, dto.CreateApartmentRequest{Type: dom.TypeRent, Number: "12B"})
	assert.ErrorIs(t, err, ErrMissingRequired)

	_, err = svc.Create(ctx, dto.CreateApartmentRequest{Type: dom.TypeRent, Agent: "   ", Number: "12B"})
	assert.ErrorIs(t, err, ErrMissingRequired)
}

func TestListNewestFirst(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	ctx := context.Background()

	for _, n := range []string{"1A", "2B", "3C"} {
		_, err := svc.Create(ctx, dto.CreateApartmentRequest{Type: dom.TypeRent, Agent: "Sam", Number: n})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "3C", list[0].Number)
	assert.Equal(t, "2B", list[1].Number)
	assert.Equal(t, "1A", list[2].Number)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePreservesOtherFields(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateApartmentRequest{
		Type:        dom.TypeRent,
		Agent:       "Sam",
		Number:      "12B",
		Description: "ground floor",
		Household:   "keys in the office",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.UpdateApartmentRequest{
		Status: strPtr(dom.StatusRented),
	})
	require.NoError(t, err)
	assert.Equal(t, dom.StatusRented, updated.Status)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, dom.StatusRented, got.Status)
	assert.Equal(t, created.Type, got.Type)
	assert.Equal(t, created.Agent, got.Agent)
	assert.Equal(t, created.Number, got.Number)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.Household, got.Household)
	assert.Equal(t, created.Photo, got.Photo)
}

func TestUpdateRequiresAtLeastOneField(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateApartmentRequest{Type: dom.TypeRent, Agent: "Sam", Number: "12B"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, dto.UpdateApartmentRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	_, err := svc.Update(context.Background(), 42, dto.UpdateApartmentRequest{Status: strPtr(dom.StatusRented)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateHouseholdReplacesWholeField(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateApartmentRequest{Type: dom.TypeRent, Agent: "Sam", Number: "12B"})
	require.NoError(t, err)

	marked, err := svc.SetHouseholdDone(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "✔", marked.Household)

	updated, err := svc.Update(ctx, created.ID, dto.UpdateApartmentRequest{
		Household: strPtr("Alice moved in"),
	})
	require.NoError(t, err)
	// The mark is part of the field value, so a full replacement drops it.
	assert.Equal(t, "Alice moved in", updated.Household)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateApartmentRequest{Type: dom.TypeRent, Agent: "Sam", Number: "12B"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}

func TestSetHouseholdDoneIdempotent(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateApartmentRequest{
		Type: dom.TypeRent, Agent: "Sam", Number: "12B", Household: "sweep the stairs",
	})
	require.NoError(t, err)

	first, err := svc.SetHouseholdDone(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "✔ sweep the stairs", first.Household)

	second, err := svc.SetHouseholdDone(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, first.Household, second.Household)
}

func TestSetHouseholdDoneRestoresOriginal(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateApartmentRequest{
		Type: dom.TypeRent, Agent: "Sam", Number: "12B", Household: "sweep the stairs",
	})
	require.NoError(t, err)

	_, err = svc.SetHouseholdDone(ctx, created.ID, true)
	require.NoError(t, err)

	restored, err := svc.SetHouseholdDone(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "sweep the stairs", restored.Household)
}

func TestSetHouseholdDoneNotFound(t *testing.T) {
	svc := NewListingService(newMemApartmentRepo(), nil)
	_, err := svc.SetHouseholdDone(context.Background(), 42, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreErrorsPropagateUnmapped(t *testing.T) {
	storeErr := errors.New("pool closed")
	svc := NewListingService(errApartmentRepo{err: storeErr}, nil)
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, storeErr)

	// Only a missing row maps to ErrNotFound; a broken store must not.
	_, err = svc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, dto.CreateApartmentRequest{Type: dom.TypeRent, Agent: "Sam", Number: "12B"})
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.Update(ctx, 1, dto.UpdateApartmentRequest{Status: strPtr(dom.StatusRented)})
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 1), storeErr)

	_, err = svc.SetHouseholdDone(ctx, 1, true)
	assert.ErrorIs(t, err, storeErr)
}
