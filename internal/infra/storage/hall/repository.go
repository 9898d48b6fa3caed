package hall

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	"github.com/seminarhub/hall-booking-service/pkg/dbmetrics"
	"github.com/seminarhub/hall-booking-service/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// hallColumns полный список колонок таблицы halls в порядке сканирования
var hallColumns = []string{
	"id",
	"name",
	"capacity",
	"equipment",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с залами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый зал. Имя зала уникально:
// нарушение ограничения транслируется в ErrHallAlreadyExists.
func (r *Repository) Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("halls").
		Columns(
			"name",
			"capacity",
			"equipment",
			"image_url",
		).
		Values(
			hall.Name,
			hall.Capacity,
			pq.Array(hall.Equipment),
			hall.ImageURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hall.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrHallAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	return hall, nil
}

// GetByID получает зал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hallColumns...).
		From("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	hall, err := scanHall(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hall: %v", ErrScanRow, err)
	}

	return hall, nil
}

// List возвращает все залы, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hallColumns...).
		From("halls").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	halls := make([]*domain.Hall, 0)
	for rows.Next() {
		hall, err := scanHall(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		halls = append(halls, hall)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return halls, nil
}

// Update применяет частичное обновление и возвращает обновленный зал
func (r *Repository) Update(ctx context.Context, id int64, patch domain.HallPatch) (*domain.Hall, error) {
	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("halls").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.Name != nil {
		updateBuilder = updateBuilder.Set("name", *patch.Name)
	}
	if patch.Capacity != nil {
		updateBuilder = updateBuilder.Set("capacity", *patch.Capacity)
	}
	if patch.Equipment != nil {
		updateBuilder = updateBuilder.Set("equipment", pq.Array(*patch.Equipment))
	}
	if patch.ImageURL != nil {
		updateBuilder = updateBuilder.Set("image_url", *patch.ImageURL)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(hallColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	hall, err := scanHall(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHallNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrHallAlreadyExists
		}
		return nil, fmt.Errorf("%w: Update - scan hall: %v", ErrScanRow, err)
	}

	return hall, nil
}

// Delete физически удаляет зал
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHallNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanHall сканирует одну строку в модель зала
func scanHall(row rowScanner) (*domain.Hall, error) {
	var hall domain.Hall
	var equipment pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&hall.ID,
		&hall.Name,
		&hall.Capacity,
		&equipment,
		&hall.ImageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	hall.Equipment = equipment
	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	return &hall, nil
}

// isUniqueViolation определяет нарушение уникального ограничения PostgreSQL
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
