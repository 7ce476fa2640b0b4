package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garage-ms/availability-service/internal/domain"
	bookingRepo "github.com/garage-ms/availability-service/internal/infra/storage/booking"
	"github.com/garage-ms/availability-service/internal/service/bookings/models"
	"github.com/garage-ms/availability-service/pkg/ptr"
)

type fakeRepo struct {
	byID       map[int64]*domain.Booking
	list       []*domain.Booking
	lastFilter domain.TechnicianBookingsFilter
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeRepo) GetByTechnicianWithFilter(_ context.Context, filter domain.TechnicianBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.list, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.byID[id].Status = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	booking := f.byID[id]
	booking.Status = domain.StatusCancelled
	if reason != "" {
		booking.CancellationReason = &reason
	}
	now := time.Now()
	booking.CancelledAt = &now
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func storedBooking(id, customerID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		TechnicianID:    1,
		CustomerID:      customerID,
		BookingDate:     time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       domain.MustTimeOfDay("10:00"),
		DurationMinutes: 60,
		Status:          status,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{
		5: storedBooking(5, 10, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	t.Run("owner sees their booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 5, 10)
		require.NoError(t, err)

		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "11:00", resp.EndTime)
	})

	t.Run("staff request skips the ownership check", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 5, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 5, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404, 10)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetTechnicianBookings(t *testing.T) {
	repo := &fakeRepo{list: []*domain.Booking{
		storedBooking(1, 10, domain.StatusConfirmed),
		storedBooking(2, 11, domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	t.Run("lists bookings and passes the filter through", func(t *testing.T) {
		status := "confirmed"
		resp, err := svc.GetTechnicianBookings(context.Background(), &models.GetTechnicianBookingsRequest{
			TechnicianID: 1,
			Status:       &status,
		})
		require.NoError(t, err)

		assert.Len(t, resp.Bookings, 2)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	})

	t.Run("rejects a non-positive technician", func(t *testing.T) {
		_, err := svc.GetTechnicianBookings(context.Background(), &models.GetTechnicianBookingsRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, -1)
		_, err := svc.GetTechnicianBookings(context.Background(), &models.GetTechnicianBookingsRequest{
			TechnicianID: 1,
			StartDate:    &start,
			EndDate:      &end,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, err := svc.GetTechnicianBookings(context.Background(), &models.GetTechnicianBookingsRequest{
			TechnicianID: 1,
			Status:       ptr.Ptr("sleeping"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Cancel(t *testing.T) {
	newSvc := func(status domain.BookingStatus) (*Service, *fakeRepo) {
		repo := &fakeRepo{byID: map[int64]*domain.Booking{
			5: storedBooking(5, 10, status),
		}}
		return NewService(repo, nopLogger{}), repo
	}

	t.Run("owner cancels a confirmed booking", func(t *testing.T) {
		svc, repo := newSvc(domain.StatusConfirmed)

		resp, err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
			CustomerID:         10,
			CancellationReason: "car sold",
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		require.NotNil(t, resp.CancellationReason)
		assert.Equal(t, "car sold", *resp.CancellationReason)
		assert.NotNil(t, resp.CancelledAt)
		assert.Equal(t, domain.StatusCancelled, repo.byID[5].Status)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		svc, _ := newSvc(domain.StatusConfirmed)

		_, err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{CustomerID: 99})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	for _, status := range []domain.BookingStatus{
		domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow,
	} {
		t.Run("cannot cancel a "+string(status)+" booking", func(t *testing.T) {
			svc, _ := newSvc(status)

			_, err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{CustomerID: 10})
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}

	t.Run("unknown booking", func(t *testing.T) {
		svc, _ := newSvc(domain.StatusConfirmed)

		_, err := svc.Cancel(context.Background(), 404, &models.CancelBookingRequest{CustomerID: 10})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
