package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/renthub/rental-service/internal/errs"
	"github.com/renthub/rental-service/internal/model"
)

// Postgres implements Repository on a pgx pool. The engine stays
// oblivious to which implementation it runs against.
type Postgres struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewPostgres(db *pgxpool.Pool, log *zap.Logger) *Postgres {
	return &Postgres{
		db:  db,
		log: log.Named("repo"),
	}
}

const (
	unitTableName    = `units`
	tenantTableName  = `tenants`
	bookingTableName = `bookings`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errs.ErrConflict
	}
	return err
}

var unitColumns = []string{
	"id", "name", "category", "daily_rate", "promo_rate", "status",
	"location", "features", "description", "specs", "tenant_id", "delivery",
}

func (r *Postgres) GetUnit(ctx context.Context, id string) (model.Unit, error) {
	query, args, err := qb.Select(unitColumns...).
		From(unitTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Unit{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Unit{}, err
	}
	defer rows.Close()

	unit, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Unit])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Unit{}, errs.ErrNotFound
		}
		return model.Unit{}, err
	}
	return unit, nil
}

func (r *Postgres) ListUnits(ctx context.Context) ([]model.Unit, error) {
	query, args, err := qb.Select(unitColumns...).
		From(unitTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Unit])
}

func (r *Postgres) PutUnit(ctx context.Context, u model.Unit) error {
	query, args, err := qb.Insert(unitTableName).
		Columns(unitColumns...).
		Values(u.ID, u.Name, u.Category, u.DailyRate, u.PromoRate, u.Status,
			u.Location, u.Features, u.Description, u.Specs, u.TenantID, u.Delivery).
		Suffix(`on conflict (id) do update set
			name = excluded.name, category = excluded.category,
			daily_rate = excluded.daily_rate, promo_rate = excluded.promo_rate,
			status = excluded.status, location = excluded.location,
			features = excluded.features, description = excluded.description,
			specs = excluded.specs, tenant_id = excluded.tenant_id,
			delivery = excluded.delivery`).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("PutUnit", zap.String("id", u.ID), zap.Error(err))
		return mapPgError(err)
	}
	return nil
}

func (r *Postgres) DeleteUnit(ctx context.Context, id string) error {
	return r.deleteByID(ctx, unitTableName, id)
}

var tenantColumns = []string{
	"id", "name", "phone", "email", "address", "join_date", "membership",
}

func (r *Postgres) GetTenant(ctx context.Context, id string) (model.Tenant, error) {
	query, args, err := qb.Select(tenantColumns...).
		From(tenantTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Tenant{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Tenant{}, err
	}
	defer rows.Close()

	tenant, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Tenant])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Tenant{}, errs.ErrNotFound
		}
		return model.Tenant{}, err
	}
	return tenant, nil
}

func (r *Postgres) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	query, args, err := qb.Select(tenantColumns...).
		From(tenantTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Tenant])
}

func (r *Postgres) PutTenant(ctx context.Context, t model.Tenant) error {
	query, args, err := qb.Insert(tenantTableName).
		Columns(tenantColumns...).
		Values(t.ID, t.Name, t.Phone, t.Email, t.Address, t.JoinDate, t.Membership).
		Suffix(`on conflict (id) do update set
			name = excluded.name, phone = excluded.phone,
			email = excluded.email, address = excluded.address,
			membership = excluded.membership`).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("PutTenant", zap.String("id", t.ID), zap.Error(err))
		return mapPgError(err)
	}
	return nil
}

func (r *Postgres) DeleteTenant(ctx context.Context, id string) error {
	return r.deleteByID(ctx, tenantTableName, id)
}

var bookingColumns = []string{
	"id", "tenant_id", "unit_ids", "start_date", "end_date", "total_price",
	"custom_fee", "discount", "down_payment", "remaining", "payment_method",
	"guarantees", "is_delivery", "delivery", "status", "notes",
}

func (r *Postgres) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Booking{}, err
	}
	defer rows.Close()

	booking, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return booking, nil
}

func (r *Postgres) ListBookings(ctx context.Context) ([]model.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingTableName).
		OrderBy("start_date desc", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
}

func (r *Postgres) PutBooking(ctx context.Context, b model.Booking) error {
	query, args, err := qb.Insert(bookingTableName).
		Columns(bookingColumns...).
		Values(b.ID, b.TenantID, b.UnitIDs, b.StartDate, b.EndDate, b.TotalPrice,
			b.CustomFee, b.Discount, b.DownPayment, b.Remaining, b.PaymentMethod,
			b.Guarantees, b.IsDelivery, b.Delivery, b.Status, b.Notes).
		Suffix(`on conflict (id) do update set
			tenant_id = excluded.tenant_id, unit_ids = excluded.unit_ids,
			start_date = excluded.start_date, end_date = excluded.end_date,
			total_price = excluded.total_price, custom_fee = excluded.custom_fee,
			discount = excluded.discount, down_payment = excluded.down_payment,
			remaining = excluded.remaining, payment_method = excluded.payment_method,
			guarantees = excluded.guarantees, is_delivery = excluded.is_delivery,
			delivery = excluded.delivery, status = excluded.status,
			notes = excluded.notes`).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("PutBooking", zap.String("id", b.ID), zap.Error(err))
		return mapPgError(err)
	}
	return nil
}

func (r *Postgres) DeleteBooking(ctx context.Context, id string) error {
	return r.deleteByID(ctx, bookingTableName, id)
}

func (r *Postgres) deleteByID(ctx context.Context, table, id string) error {
	query, args, err := qb.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
