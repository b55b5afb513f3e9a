package service

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"emprius-backend/internal/domain"
)

type pushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type pushNotifier struct {
	client pushSender
}

// NewPushNotifier sends booking messages through Firebase Cloud Messaging.
func NewPushNotifier(ctx context.Context, credentialsFile, projectID string) (Notifier, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize messaging client: %w", err)
	}
	return &pushNotifier{client: client}, nil
}

func (n *pushNotifier) Name() string { return "fcm" }

func (n *pushNotifier) Notify(ctx context.Context, to *domain.User, msg Message) error {
	// Users without a registered device only get in-app notifications.
	if to.PushToken == "" {
		return nil
	}
	_, err := n.client.Send(ctx, &messaging.Message{
		Token: to.PushToken,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Attributes,
	})
	return err
}
