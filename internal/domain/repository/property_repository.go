package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"realestate_crud/internal/common"
	"realestate_crud/internal/domain/model"
	"strings"
)

// PropertyFilter holds the optional search predicates. A nil field means
// the predicate is absent; provided predicates combine with AND.
type PropertyFilter struct {
	Query    *string  // substring of address OR description, case-sensitive
	MaxPrice *float64 // inclusive upper bound
	MaxSize  *float64 // inclusive upper bound
}

type PropertyRepository interface {
	List(ctx context.Context, filter PropertyFilter, limit, offset int) ([]model.Property, int, error)
	FindByID(ctx context.Context, id int64) (*model.Property, error)
	Create(ctx context.Context, p *model.Property) error
	Update(ctx context.Context, p *model.Property) error
	Delete(ctx context.Context, id int64) error
}

type pgPropertyRepository struct {
	db *sql.DB
}

func NewPgPropertyRepository(db *sql.DB) PropertyRepository {
	return &pgPropertyRepository{db: db}
}

// buildFilterClause composes the WHERE clause for the given filter. It
// returns the clause (possibly empty), its arguments, and the next
// placeholder index.
func buildFilterClause(filter PropertyFilter, argID int) (string, []interface{}, int) {
	var conditions []string
	var args []interface{}

	if filter.Query != nil {
		pattern := "%" + *filter.Query + "%"
		conditions = append(conditions, fmt.Sprintf("(address LIKE $%d OR description LIKE $%d)", argID, argID+1))
		args = append(args, pattern, pattern)
		argID += 2
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", argID))
		args = append(args, *filter.MaxPrice)
		argID++
	}
	if filter.MaxSize != nil {
		conditions = append(conditions, fmt.Sprintf("size <= $%d", argID))
		args = append(args, *filter.MaxSize)
		argID++
	}

	if len(conditions) == 0 {
		return "", args, argID
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, argID
}

func (r *pgPropertyRepository) List(ctx context.Context, filter PropertyFilter, limit, offset int) ([]model.Property, int, error) {
	whereClause, args, argID := buildFilterClause(filter, 1)

	countQuery := "SELECT COUNT(*) FROM properties" + whereClause
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pgPropertyRepository.List: count: %w", err)
	}

	listQuery := fmt.Sprintf(
		"SELECT id, address, price, size, description FROM properties%s ORDER BY id LIMIT $%d OFFSET $%d",
		whereClause, argID, argID+1,
	)
	listArgs := append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("pgPropertyRepository.List: %w", err)
	}
	defer rows.Close()

	properties := []model.Property{}
	for rows.Next() {
		var p model.Property
		if err := rows.Scan(&p.ID, &p.Address, &p.Price, &p.Size, &p.Description); err != nil {
			return nil, 0, fmt.Errorf("pgPropertyRepository.List: scan: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("pgPropertyRepository.List: rows: %w", err)
	}
	return properties, total, nil
}

func (r *pgPropertyRepository) FindByID(ctx context.Context, id int64) (*model.Property, error) {
	query := `SELECT id, address, price, size, description FROM properties WHERE id = $1`
	p := &model.Property{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Address, &p.Price, &p.Size, &p.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgPropertyRepository.FindByID: %w", err)
	}
	return p, nil
}

func (r *pgPropertyRepository) Create(ctx context.Context, p *model.Property) error {
	query := `INSERT INTO properties (address, price, size, description)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, p.Address, p.Price, p.Size, p.Description).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("pgPropertyRepository.Create: %w", err)
	}
	return nil
}

func (r *pgPropertyRepository) Update(ctx context.Context, p *model.Property) error {
	query := `UPDATE properties SET address = $1, price = $2, size = $3, description = $4
	          WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, p.Address, p.Price, p.Size, p.Description, p.ID)
	if err != nil {
		return fmt.Errorf("pgPropertyRepository.Update: %w", err)
	}
	return nil
}

// Delete removes by id. Deleting an absent id affects zero rows and is
// not an error.
func (r *pgPropertyRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM properties WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("pgPropertyRepository.Delete: %w", err)
	}
	return nil
}
