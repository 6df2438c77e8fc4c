package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	// GetByID returns the booking joined with its service summary and owner.
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Update(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id string) error
}

// sortColumns maps the accepted sort keys to SQL columns.
var sortColumns = map[string]string{
	"created_at":            "b.created_at",
	"appointment_date_time": "b.appointment_date_time",
	"status":                "b.status",
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) selectBookings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.customer_name", "b.phone_number", "b.pet_name", "b.appointment_date_time",
		"b.service_id", "s.id", "s.name", "s.description", "s.price", "s.duration", "s.image_url",
		"b.status", "b.notes", "b.owner_id", "u.username", "u.role",
		"b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		// Deleting a service leaves the reference dangling, so both joins are outer joins.
		LeftJoin("public.services s ON b.service_id = s.id").
		LeftJoin("public.users u ON b.owner_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b           Booking
		svcID       *string
		svcName     *string
		svcDesc     *string
		svcPrice    *float64
		svcDuration *int
		svcImage    *string
		ownerName   *string
		ownerRole   *string
	)
	if err := row.Scan(
		&b.ID, &b.CustomerName, &b.PhoneNumber, &b.PetName, &b.AppointmentDateTime,
		&b.ServiceID, &svcID, &svcName, &svcDesc, &svcPrice, &svcDuration, &svcImage,
		&b.Status, &b.Notes, &b.OwnerID, &ownerName, &ownerRole,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if svcID != nil {
		b.Service = &ServiceSummary{ID: *svcID}
		if svcName != nil {
			b.Service.Name = *svcName
		}
		if svcDesc != nil {
			b.Service.Description = *svcDesc
		}
		if svcPrice != nil {
			b.Service.Price = *svcPrice
		}
		if svcDuration != nil {
			b.Service.Duration = *svcDuration
		}
		if svcImage != nil {
			b.Service.ImageURL = *svcImage
		}
	}
	if ownerName != nil {
		b.OwnerUsername = *ownerName
	}
	if ownerRole != nil {
		b.OwnerRole = *ownerRole
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("id", "customer_name", "phone_number", "pet_name", "appointment_date_time",
			"service_id", "status", "notes", "owner_id").
		Values(b.ID, b.CustomerName, b.PhoneNumber, b.PetName, b.AppointmentDateTime,
			b.ServiceID, b.Status, b.Notes, b.OwnerID).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	query := r.selectBookings()

	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"b.owner_id": filter.OwnerID})
	}
	if filter.ServiceID != "" {
		query = query.Where(squirrel.Eq{"b.service_id": filter.ServiceID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}

	// Sorting, newest first
	orderBy, ok := sortColumns[filter.SortBy]
	if !ok {
		orderBy = sortColumns["created_at"]
	}
	query = query.OrderBy(orderBy + " DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings failed: %w", err)
	}

	return bookings, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("customer_name", b.CustomerName).
		Set("phone_number", b.PhoneNumber).
		Set("pet_name", b.PetName).
		Set("appointment_date_time", b.AppointmentDateTime).
		Set("service_id", b.ServiceID).
		Set("status", b.Status).
		Set("notes", b.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
