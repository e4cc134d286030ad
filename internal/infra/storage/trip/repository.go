package trip

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/opentrip/OTS-Backend/internal/domain"
	"github.com/opentrip/OTS-Backend/pkg/dbmetrics"
	"github.com/opentrip/OTS-Backend/pkg/psqlbuilder"
)

// Repository репозиторий для работы с поездками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория поездок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую поездку
// Расписания и маршрут при создании пусты, гид не назначен
func (r *Repository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trips").
		Columns(
			"id",
			"owner_id",
			"name",
			"capacity",
			"current_bookings",
		).
		Values(
			trip.ID,
			trip.OwnerID,
			trip.Name,
			trip.Capacity,
			trip.CurrentBookings,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	trip.CreatedAt = createdAt.Time
	trip.UpdatedAt = updatedAt.Time

	return trip, nil
}

// GetByID получает поездку по ID вместе с расписаниями, маршрутом и гидом
// Если в контексте активна транзакция, строка поездки блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"capacity",
		"current_bookings",
		"itinerary_destinations",
		"itinerary_description",
		"guide_id",
		"created_at",
		"updated_at",
	).
		From("trips").
		Where(squirrel.Eq{"id": id})

	// Блокируем строку поездки в транзакции (проверка вместимости перед записью)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		trip            domain.Trip
		destinations    pq.StringArray
		itineraryDesc   sql.NullString
		guideID         sql.NullString
		createdAt       sql.NullTime
		updatedAt       sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&trip.ID,
		&trip.OwnerID,
		&trip.Name,
		&trip.Capacity,
		&trip.CurrentBookings,
		&destinations,
		&itineraryDesc,
		&guideID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan trip: %v", ErrScanRow, err)
	}

	trip.CreatedAt = createdAt.Time
	trip.UpdatedAt = updatedAt.Time

	if len(destinations) > 0 {
		trip.Itinerary = &domain.Itinerary{
			Destinations: destinations,
			Description:  itineraryDesc.String,
		}
	}

	// Загружаем расписания
	schedules, err := r.getSchedules(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	trip.Schedules = schedules

	// Загружаем гида, если назначен
	if guideID.Valid {
		guide, err := r.getGuide(ctx, executor, guideID.String)
		if err != nil {
			return nil, err
		}
		for _, s := range schedules {
			guide.SetTripSchedule(trip.ID, s.StartDate, s.EndDate)
		}
		guide.AssignToTrip(trip.ID)
		trip.Guide = guide
	}

	return &trip, nil
}

// List получает список всех поездок
// Для списка загружаются только сами поездки и имена гидов (без расписаний и маршрутов)
func (r *Repository) List(ctx context.Context) ([]*domain.Trip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"t.id",
		"t.owner_id",
		"t.name",
		"t.capacity",
		"t.current_bookings",
		"t.created_at",
		"t.updated_at",
		"g.id",
		"g.name",
		"g.contact",
		"g.language",
	).
		From("trips t").
		LeftJoin("guides g ON g.id = t.guide_id").
		OrderBy("t.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0)
	for rows.Next() {
		var (
			trip          domain.Trip
			createdAt     sql.NullTime
			updatedAt     sql.NullTime
			guideID       sql.NullString
			guideName     sql.NullString
			guideContact  sql.NullString
			guideLanguage sql.NullString
		)

		err := rows.Scan(
			&trip.ID,
			&trip.OwnerID,
			&trip.Name,
			&trip.Capacity,
			&trip.CurrentBookings,
			&createdAt,
			&updatedAt,
			&guideID,
			&guideName,
			&guideContact,
			&guideLanguage,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan trip: %v", ErrScanRow, err)
		}

		trip.CreatedAt = createdAt.Time
		trip.UpdatedAt = updatedAt.Time

		if guideID.Valid {
			trip.Guide = domain.NewGuide(guideID.String, guideName.String, guideContact.String, guideLanguage.String)
		}

		trips = append(trips, &trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return trips, nil
}

// AddSchedule добавляет расписание к поездке
// Проверка пересечений выполняется доменной моделью до вызова репозитория
func (r *Repository) AddSchedule(ctx context.Context, tripID string, schedule domain.Schedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trip_schedules").
		Columns("trip_id", "start_date", "end_date", "location").
		Values(tripID, schedule.StartDate, schedule.EndDate, schedule.Location).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddSchedule - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddSchedule - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// AssignGuide сохраняет гида и привязывает его к поездке
func (r *Repository) AssignGuide(ctx context.Context, tripID string, guide *domain.Guide) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guides").
		Columns("id", "name", "contact", "language").
		Values(guide.ID, guide.Name, guide.Contact, guide.Language).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AssignGuide - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AssignGuide - execute insert: %v", ErrExecQuery, err)
	}

	return r.update(ctx, executor, "AssignGuide", tripID, map[string]interface{}{
		"guide_id": guide.ID,
	})
}

// UpdateCapacity обновляет вместимость поездки
func (r *Repository) UpdateCapacity(ctx context.Context, tripID string, capacity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	return r.update(ctx, executor, "UpdateCapacity", tripID, map[string]interface{}{
		"capacity": capacity,
	})
}

// UpdateItinerary обновляет маршрут поездки
func (r *Repository) UpdateItinerary(ctx context.Context, tripID string, itinerary *domain.Itinerary) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	return r.update(ctx, executor, "UpdateItinerary", tripID, map[string]interface{}{
		"itinerary_destinations": pq.Array(itinerary.Destinations),
		"itinerary_description":  itinerary.Description,
	})
}

// IncrementBookings увеличивает счетчик бронирований с защитой от переполнения
// Возвращает ErrTripFull, когда свободных мест не осталось
func (r *Repository) IncrementBookings(ctx context.Context, tripID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trips").
		Set("current_bookings", squirrel.Expr("current_bookings + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tripID}).
		Where(squirrel.Expr("current_bookings < capacity")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementBookings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementBookings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementBookings - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTripFull
	}

	return nil
}

// DecrementBookings уменьшает счетчик бронирований, не опускаясь ниже нуля
func (r *Repository) DecrementBookings(ctx context.Context, tripID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trips").
		Set("current_bookings", squirrel.Expr("current_bookings - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tripID}).
		Where(squirrel.Expr("current_bookings > 0")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementBookings - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DecrementBookings - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// update выполняет частичное обновление поездки
func (r *Repository) update(ctx context.Context, executor DBExecutor, method string, tripID string, fields map[string]interface{}) error {
	updateBuilder := psqlbuilder.Update("trips").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tripID})

	for column, value := range fields {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, method, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrTripNotFound
	}

	return nil
}

// getSchedules загружает расписания поездки
func (r *Repository) getSchedules(ctx context.Context, executor DBExecutor, tripID string) ([]domain.Schedule, error) {
	query, args, err := psqlbuilder.Select("start_date", "end_date", "location").
		From("trip_schedules").
		Where(squirrel.Eq{"trip_id": tripID}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]domain.Schedule, 0)
	for rows.Next() {
		var s domain.Schedule
		if err := rows.Scan(&s.StartDate, &s.EndDate, &s.Location); err != nil {
			return nil, fmt.Errorf("%w: getSchedules - scan schedule: %v", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// getGuide загружает гида по ID
func (r *Repository) getGuide(ctx context.Context, executor DBExecutor, guideID string) (*domain.Guide, error) {
	query, args, err := psqlbuilder.Select("id", "name", "contact", "language").
		From("guides").
		Where(squirrel.Eq{"id": guideID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getGuide - build select query: %v", ErrBuildQuery, err)
	}

	var id, name, contact, language string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id, &name, &contact, &language)
	if err != nil {
		return nil, fmt.Errorf("%w: getGuide - scan guide: %v", ErrScanRow, err)
	}

	return domain.NewGuide(id, name, contact, language), nil
}
