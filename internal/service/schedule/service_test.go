package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CallbackService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-CallbackService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-CallbackService/internal/service/schedule/models"
	"github.com/m04kA/SMC-CallbackService/pkg/ptr"
)

// stubRepo репозиторий-заглушка с подсчетом вызовов записи
type stubRepo struct {
	week         *domain.WeekSchedule
	getErr       error
	replaceErr   error
	replaceCalls int
	replaced     *domain.WeekSchedule
}

func (s *stubRepo) GetWeek(_ context.Context) (*domain.WeekSchedule, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.week, nil
}

func (s *stubRepo) ReplaceWeek(_ context.Context, week *domain.WeekSchedule) error {
	s.replaceCalls++
	s.replaced = week
	return s.replaceErr
}

// stubTxManager исполняет fn без реальной транзакции
type stubTxManager struct {
	calls int
}

func (m *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openDay(open, close string) models.DayScheduleModel {
	return models.DayScheduleModel{IsOpen: true, OpenTime: ptr.Ptr(open), CloseTime: ptr.Ptr(close)}
}

func defaultReplaceRequest() *models.ReplaceScheduleRequest {
	return &models.ReplaceScheduleRequest{
		UserID:    42,
		Monday:    openDay("09:00", "18:00"),
		Tuesday:   openDay("09:00", "18:00"),
		Wednesday: openDay("09:00", "18:00"),
		Thursday:  openDay("09:00", "20:00"),
		Friday:    openDay("09:00", "20:00"),
		Saturday:  openDay("09:00", "12:30"),
		Sunday:    models.DayScheduleModel{IsOpen: false},
	}
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns configured schedule", func(t *testing.T) {
		week := domain.DefaultWeekSchedule()
		week.Sunday = domain.Open("10:00", "14:00")
		svc := NewService(&stubRepo{week: week}, &stubTxManager{}, nopLogger{})

		resp, err := svc.Get(ctx)

		require.NoError(t, err)
		assert.False(t, resp.IsDefault)
		require.True(t, resp.Sunday.IsOpen)
		assert.Equal(t, "10:00", *resp.Sunday.OpenTime)
	})

	t.Run("falls back to default office hours", func(t *testing.T) {
		svc := NewService(&stubRepo{getErr: scheduleRepo.ErrScheduleNotFound}, &stubTxManager{}, nopLogger{})

		resp, err := svc.Get(ctx)

		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		assert.False(t, resp.Sunday.IsOpen)
		require.True(t, resp.Monday.IsOpen)
		assert.Equal(t, "09:00", *resp.Monday.OpenTime)
		assert.Equal(t, "18:00", *resp.Monday.CloseTime)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		svc := NewService(&stubRepo{getErr: errors.New("connection refused")}, &stubTxManager{}, nopLogger{})

		_, err := svc.Get(ctx)

		require.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces schedule in a transaction", func(t *testing.T) {
		repo := &stubRepo{}
		txm := &stubTxManager{}
		svc := NewService(repo, txm, nopLogger{})

		resp, err := svc.Replace(ctx, defaultReplaceRequest())

		require.NoError(t, err)
		assert.Equal(t, 1, txm.calls)
		assert.Equal(t, 1, repo.replaceCalls)
		assert.False(t, resp.IsDefault)
		require.NotNil(t, repo.replaced)
		assert.Equal(t, "12:30", repo.replaced.Saturday.CloseTime.String())
	})

	t.Run("invalid day schedule does not touch storage", func(t *testing.T) {
		repo := &stubRepo{}
		txm := &stubTxManager{}
		svc := NewService(repo, txm, nopLogger{})

		req := defaultReplaceRequest()
		req.Monday = openDay("18:00", "09:00")

		_, err := svc.Replace(ctx, req)

		require.ErrorIs(t, err, ErrInvalidSchedule)
		assert.Zero(t, txm.calls)
		assert.Zero(t, repo.replaceCalls)
	})

	t.Run("schedule without working days is rejected", func(t *testing.T) {
		repo := &stubRepo{}
		txm := &stubTxManager{}
		svc := NewService(repo, txm, nopLogger{})

		closed := models.DayScheduleModel{IsOpen: false}
		req := &models.ReplaceScheduleRequest{
			UserID: 42,
			Monday: closed, Tuesday: closed, Wednesday: closed,
			Thursday: closed, Friday: closed, Saturday: closed, Sunday: closed,
		}

		_, err := svc.Replace(ctx, req)

		require.ErrorIs(t, err, ErrNoWorkingDays)
		assert.Zero(t, repo.replaceCalls)
	})

	t.Run("open day without times is treated as closed", func(t *testing.T) {
		repo := &stubRepo{}
		svc := NewService(repo, &stubTxManager{}, nopLogger{})

		req := defaultReplaceRequest()
		req.Monday = models.DayScheduleModel{IsOpen: true} // нет времени открытия

		_, err := svc.Replace(ctx, req)

		require.NoError(t, err)
		assert.False(t, repo.replaced.Monday.IsOpen)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		repo := &stubRepo{replaceErr: errors.New("serialization failure")}
		svc := NewService(repo, &stubTxManager{}, nopLogger{})

		_, err := svc.Replace(ctx, defaultReplaceRequest())

		require.ErrorIs(t, err, ErrInternal)
	})
}
