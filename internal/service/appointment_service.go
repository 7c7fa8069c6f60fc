package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/notification"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"go.uber.org/zap"
)

// AppointmentService enforces at most one appointment per calendar day,
// globally. The day boundary follows the store's local timezone.
type AppointmentService struct {
	appointments AppointmentStore
	mailer       notification.Mailer
	location     *time.Location
	logger       *zap.Logger
}

func NewAppointmentService(appointments AppointmentStore, mailer notification.Mailer, location *time.Location, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		mailer:       mailer,
		location:     location,
		logger:       logger,
	}
}

// Book persists the appointment and dispatches the confirmation mails.
// A second booking on the same date, by any user and at any time of day,
// fails with ErrSlotTaken.
func (s *AppointmentService) Book(ctx context.Context, user *domain.User, timestamp time.Time) (*domain.Appointment, error) {
	appointment := &domain.Appointment{
		Date:      timestamp.In(s.location).Format("2006-01-02"),
		UserID:    user.UserID,
		Timestamp: timestamp.UTC(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.appointments.CreateAppointment(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrDateTaken) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	s.logger.Info("Appointment booked",
		zap.String("date", appointment.Date),
		zap.String("user_id", user.UserID))

	when := s.formatWhen(timestamp)

	s.mailer.Send(
		"Appointment Confirmed",
		fmt.Sprintf("Dear %s,\n\tThank you for booking appointment.\n\tYour appointment is at %s.\n\nThanks,\n Larena team", user.Name, when),
		mailFromLabel,
		[]string{user.Email},
	)

	s.mailer.NotifyAdmins(
		"Appointment Confirmed",
		fmt.Sprintf("New appointment booked by %s Phn: %s at %s", user.Name, user.Phone, when),
	)

	return appointment, nil
}

// BookedDates lists the timestamps of upcoming appointments so clients can
// grey out taken days.
func (s *AppointmentService) BookedDates(ctx context.Context) ([]time.Time, error) {
	appointments, err := s.appointments.ListAfter(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(appointments))
	for _, a := range appointments {
		dates = append(dates, a.Timestamp)
	}
	return dates, nil
}

// formatWhen renders e.g. "4:30 on Friday, 2nd May" in store-local time.
func (s *AppointmentService) formatWhen(timestamp time.Time) string {
	t := timestamp.In(s.location)
	return fmt.Sprintf("%s on %s, %d%s %s",
		t.Format("3:04"), t.Weekday(), t.Day(), daySuffix(t.Day()), t.Month())
}

// daySuffix keeps the original ordinal rule: st/nd/rd for days 1-3, th for
// everything after.
func daySuffix(day int) string {
	switch day {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
