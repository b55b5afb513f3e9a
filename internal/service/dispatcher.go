package service

import (
	"context"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/repository"
)

// Dispatcher records an in-app notification for a booking event and forwards it
// to every configured Notifier. Failures are logged and never returned, the
// booking operation that triggered the event has already been committed.
type Dispatcher struct {
	noteRepo  repository.NotificationRepository
	userRepo  repository.UserRepository
	notifiers []Notifier
}

func NewDispatcher(noteRepo repository.NotificationRepository, userRepo repository.UserRepository, notifiers ...Notifier) *Dispatcher {
	return &Dispatcher{noteRepo: noteRepo, userRepo: userRepo, notifiers: notifiers}
}

func (d *Dispatcher) Dispatch(ctx context.Context, userID int32, msg Message) {
	if d == nil {
		return
	}

	note := &domain.Notification{
		UserID:     userID,
		Title:      msg.Title,
		Message:    msg.Body,
		Attributes: msg.Attributes,
	}
	if err := d.noteRepo.Create(ctx, note); err != nil {
		logger.WarnContext(ctx, "Failed to store notification", "userID", userID, "error", err)
	}

	if len(d.notifiers) == 0 {
		return
	}
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load notification recipient", "userID", userID, "error", err)
		return
	}
	for _, n := range d.notifiers {
		logger.ExternalServiceCall(n.Name(), "notify", "userID", userID)
		err := n.Notify(ctx, user, msg)
		logger.ExternalServiceResult(n.Name(), "notify", err, "userID", userID)
	}
}
