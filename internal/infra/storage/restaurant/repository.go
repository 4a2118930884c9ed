package restaurant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/booktable/reservation-service/internal/domain"
	"github.com/booktable/reservation-service/pkg/dbmetrics"
	"github.com/booktable/reservation-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с ресторанами, столами и часами работы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var restaurantColumns = []string{
	"id",
	"name",
	"description",
	"address",
	"city",
	"state",
	"zip_code",
	"phone",
	"email",
	"website",
	"cost_rating",
	"manager_id",
	"approval_status",
	"created_at",
	"updated_at",
}

// GetByID получает ресторан по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	restaurant, err := r.scanRestaurant(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan restaurant: %v", ErrScanRow, err)
	}

	return restaurant, nil
}

// GetByManagerID получает рестораны менеджера
func (r *Repository) GetByManagerID(ctx context.Context, managerID int64) ([]*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"manager_id": managerID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByManagerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByManagerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRestaurants(rows)
}

// GetPending получает рестораны, ожидающие модерации
func (r *Repository) GetPending(ctx context.Context) ([]*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"approval_status": domain.ApprovalPending}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRestaurants(rows)
}

// UpdateApprovalStatus обновляет статус модерации ресторана
func (r *Repository) UpdateApprovalStatus(ctx context.Context, id int64, status domain.ApprovalStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("restaurants").
		Set("approval_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateApprovalStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateApprovalStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateApprovalStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}

// GetTables получает все столы ресторана, отсортированные по вместимости.
// Порядок важен: при автоподборе стола берется первый свободный, поэтому
// маленькие компании получают маленькие столы, а большие остаются
// доступными для больших компаний.
func (r *Repository) GetTables(ctx context.Context, restaurantID int64) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"table_number",
		"capacity",
	).
		From("tables").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("capacity ASC, table_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTables - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTables - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// GetTablesForPartySize получает столы ресторана, вмещающие компанию
func (r *Repository) GetTablesForPartySize(ctx context.Context, restaurantID int64, partySize int) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"table_number",
		"capacity",
	).
		From("tables").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		Where(squirrel.GtOrEq{"capacity": partySize}).
		OrderBy("capacity ASC, table_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTablesForPartySize - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTablesForPartySize - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// GetHours получает часы работы ресторана на всю неделю
func (r *Repository) GetHours(ctx context.Context, restaurantID int64) ([]*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"day",
		"opening_time",
		"closing_time",
	).
		From("operating_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.OperatingHours, 0)
	for rows.Next() {
		var h domain.OperatingHours
		if err := rows.Scan(&h.ID, &h.RestaurantID, &h.Day, &h.OpeningTime, &h.ClosingTime); err != nil {
			return nil, fmt.Errorf("%w: GetHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetHoursForDay получает часы работы ресторана на день недели (0 = понедельник).
// Отсутствие строки означает, что ресторан в этот день закрыт.
func (r *Repository) GetHoursForDay(ctx context.Context, restaurantID int64, day int) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"day",
		"opening_time",
		"closing_time",
	).
		From("operating_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "day": day}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursForDay - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.OperatingHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.RestaurantID,
		&h.Day,
		&h.OpeningTime,
		&h.ClosingTime,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursForDay - scan row: %v", ErrScanRow, err)
	}

	return &h, nil
}

// ReplaceHours полностью заменяет недельное расписание ресторана.
// Вызывается внутри транзакции: удаление и вставка должны быть атомарны.
func (r *Repository) ReplaceHours(ctx context.Context, restaurantID int64, hours []*domain.OperatingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("operating_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("operating_hours").
		Columns("restaurant_id", "day", "opening_time", "closing_time")
	for _, h := range hours {
		insertBuilder = insertBuilder.Values(restaurantID, h.Day, h.OpeningTime, h.ClosingTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Description,
		&restaurant.Address,
		&restaurant.City,
		&restaurant.State,
		&restaurant.ZipCode,
		&restaurant.Phone,
		&restaurant.Email,
		&restaurant.Website,
		&restaurant.CostRating,
		&restaurant.ManagerID,
		&restaurant.ApprovalStatus,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	return &restaurant, nil
}

func (r *Repository) scanRestaurants(rows *sql.Rows) ([]*domain.Restaurant, error) {
	restaurants := make([]*domain.Restaurant, 0)

	for rows.Next() {
		restaurant, err := r.scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRestaurants - scan row: %v", ErrScanRow, err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRestaurants - rows error: %v", ErrScanRow, err)
	}

	return restaurants, nil
}

func (r *Repository) scanTables(rows *sql.Rows) ([]*domain.Table, error) {
	tables := make([]*domain.Table, 0)

	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.RestaurantID, &table.TableNumber, &table.Capacity); err != nil {
			return nil, fmt.Errorf("%w: scanTables - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, &table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}
