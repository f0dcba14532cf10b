package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CallbackService/internal/domain"
	"github.com/m04kA/SMC-CallbackService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallbackService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CallbackService/pkg/ptr"
	"github.com/m04kA/SMC-CallbackService/pkg/types"
)

// Repository репозиторий для работы с расписанием офиса.
// Таблица office_hours хранит одну строку на день недели:
// weekday (0=Sunday..6=Saturday, нумерация time.Weekday), is_open,
// open_time/close_time в формате "HH:MM" (NULL для закрытых дней).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeek загружает расписание на всю неделю.
// Возвращает ErrScheduleNotFound, если таблица пуста.
// Дни, отсутствующие в таблице, считаются закрытыми.
func (r *Repository) GetWeek(ctx context.Context) (*domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
	).
		From("office_hours").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := &domain.WeekSchedule{}
	found := 0

	for rows.Next() {
		var (
			weekday   int
			isOpen    bool
			openTime  *string
			closeTime *string
		)

		if err := rows.Scan(&weekday, &isOpen, &openTime, &closeTime); err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan row: %v", ErrScanRow, err)
		}

		if weekday < int(time.Sunday) || weekday > int(time.Saturday) {
			return nil, fmt.Errorf("%w: GetWeek - weekday=%d", ErrInvalidWeekday, weekday)
		}

		day := domain.Closed()
		if isOpen && openTime != nil && closeTime != nil {
			day = domain.Open(types.TimeString(*openTime), types.TimeString(*closeTime))
		}

		week.SetForWeekday(time.Weekday(weekday), day)
		found++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	if found == 0 {
		return nil, ErrScheduleNotFound
	}

	return week, nil
}

// ReplaceWeek полностью заменяет расписание недели.
// Выполняется как delete + insert семи строк; вызывающая сторона
// оборачивает вызов в сериализуемую транзакцию через TransactionManager.
func (r *Repository) ReplaceWeek(ctx context.Context, week *domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("office_hours").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("office_hours").
		Columns("weekday", "is_open", "open_time", "close_time")

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := week.ForWeekday(wd)

		var openTime, closeTime *string
		if day.IsOpen {
			openTime = ptr.Ptr(day.OpenTime.String())
			closeTime = ptr.Ptr(day.CloseTime.String())
		}

		insertBuilder = insertBuilder.Values(int(wd), day.IsOpen, openTime, closeTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
