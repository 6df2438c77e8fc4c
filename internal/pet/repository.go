package pet

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Pet) error
	GetByID(ctx context.Context, id string) (*Pet, error)
	List(ctx context.Context, filter Filter) ([]*Pet, error)
	Update(ctx context.Context, p *Pet) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
	psql squirrel.StatementBuilderType
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{
		pool: pool,
		psql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// selectPets joins the owner's username so reads come back populated.
func (r *pgxRepository) selectPets() squirrel.SelectBuilder {
	return r.psql.Select(
		"p.id", "p.name", "p.age", "p.breed", "p.image", "p.owner_id",
		"COALESCE(u.username, '')", "p.created_at", "p.updated_at",
	).
		From("public.pets p").
		LeftJoin("public.users u ON u.id = p.owner_id")
}

func scanPet(row pgx.Row) (*Pet, error) {
	var p Pet
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Breed, &p.Image, &p.OwnerID, &p.OwnerUsername, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pgxRepository) Create(ctx context.Context, p *Pet) error {
	query, args, err := r.psql.Insert("public.pets").
		Columns("id", "name", "age", "breed", "image", "owner_id").
		Values(p.ID, p.Name, p.Age, p.Breed, p.Image, p.OwnerID).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create pet query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("create pet failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Pet, error) {
	query, args, err := r.selectPets().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get pet query failed: %w", err)
	}

	p, err := scanPet(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pet failed: %w", err)
	}
	return p, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Pet, error) {
	qb := r.selectPets()
	if filter.OwnerID != "" {
		qb = qb.Where(squirrel.Eq{"p.owner_id": filter.OwnerID})
	}
	query, args, err := qb.OrderBy("p.created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pets query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pets failed: %w", err)
	}
	defer rows.Close()

	pets := []*Pet{}
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pet failed: %w", err)
		}
		pets = append(pets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pets failed: %w", err)
	}
	return pets, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Pet) error {
	query, args, err := r.psql.Update("public.pets").
		Set("name", p.Name).
		Set("age", p.Age).
		Set("breed", p.Breed).
		Set("image", p.Image).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update pet query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update pet failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.psql.Delete("public.pets").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete pet query failed: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete pet failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
