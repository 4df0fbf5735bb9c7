package repo

import (
	"context"

	dom "github.com/DoaaAltair/Elite-Home/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ApartmentRepo provides apartment persistence.
type ApartmentRepo interface {
	Create(ctx context.Context, a dom.Apartment) (dom.Apartment, error)
	GetByID(ctx context.Context, id int64) (dom.Apartment, error)
	List(ctx context.Context) ([]dom.Apartment, error)
	Update(ctx context.Context, id int64, a dom.Apartment) (dom.Apartment, error)
	SetHousehold(ctx context.Context, id int64, household string) (dom.Apartment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PGApartmentRepo implements ApartmentRepo with Postgres.
type PGApartmentRepo struct {
	db *pgxpool.Pool
}

// NewPGApartmentRepo returns a new PGApartmentRepo.
func NewPGApartmentRepo(db *pgxpool.Pool) *PGApartmentRepo {
	return &PGApartmentRepo{db: db}
}

const apartmentColumns = `id, type, agent, number, description, status, household, photo, created_at, updated_at`

func scanApartment(row interface{ Scan(dest ...any) error }) (dom.Apartment, error) {
	var a dom.Apartment
	err := row.Scan(
		&a.ID, &a.Type, &a.Agent, &a.Number, &a.Description,
		&a.Status, &a.Household, &a.Photo, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *PGApartmentRepo) Create(ctx context.Context, a dom.Apartment) (dom.Apartment, error) {
	query := `
		INSERT INTO apartments (type, agent, number, description, status, household, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + apartmentColumns
	return scanApartment(r.db.QueryRow(ctx, query,
		a.Type, a.Agent, a.Number, a.Description, a.Status, a.Household, a.Photo))
}

func (r *PGApartmentRepo) GetByID(ctx context.Context, id int64) (dom.Apartment, error) {
	query := `SELECT ` + apartmentColumns + ` FROM apartments WHERE id = $1`
	return scanApartment(r.db.QueryRow(ctx, query, id))
}

// List returns all apartments, most recently created first.
func (r *PGApartmentRepo) List(ctx context.Context) ([]dom.Apartment, error) {
	query := `SELECT ` + apartmentColumns + ` FROM apartments ORDER BY id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Apartment
	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *PGApartmentRepo) Update(ctx context.Context, id int64, a dom.Apartment) (dom.Apartment, error) {
	query := `
		UPDATE apartments
		SET type = $2, agent = $3, number = $4, description = $5,
		    status = $6, household = $7, photo = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + apartmentColumns
	return scanApartment(r.db.QueryRow(ctx, query,
		id, a.Type, a.Agent, a.Number, a.Description, a.Status, a.Household, a.Photo))
}

func (r *PGApartmentRepo) SetHousehold(ctx context.Context, id int64, household string) (dom.Apartment, error) {
	query := `
		UPDATE apartments SET household = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + apartmentColumns
	return scanApartment(r.db.QueryRow(ctx, query, id, household))
}

// Delete removes the row and reports whether anything was deleted.
func (r *PGApartmentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM apartments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
