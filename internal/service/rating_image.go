package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"emprius-backend/internal/domain"
	"emprius-backend/internal/repository"
	"emprius-backend/internal/storage"
)

const ratingImageURLTTL = 15 * time.Minute

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

type ratingImageService struct {
	bookingRepo repository.BookingRepository
	store       storage.Storage
}

func NewRatingImageService(bookingRepo repository.BookingRepository, store storage.Storage) RatingImageService {
	return &ratingImageService{bookingRepo: bookingRepo, store: store}
}

func (s *ratingImageService) RequestUpload(ctx context.Context, userID, bookingID int32, filename, contentType string) (string, string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidInput, contentType)
	}
	if e := strings.ToLower(path.Ext(filename)); e == ".jpeg" || e == ".png" || e == ".gif" {
		ext = e
	}

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrBookingNotFound
		}
		return "", "", err
	}
	if b.FromUserID != userID && b.ToUserID != userID {
		return "", "", ErrUnauthorized
	}
	if b.Status != domain.BookingStatusReturned {
		return "", "", ErrNotReturned
	}

	key := fmt.Sprintf("%s%s%s", ratingImagePrefix(b.ID), uuid.New().String(), ext)
	url, err := s.store.UploadURL(ctx, key, contentType, ratingImageURLTTL)
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}

func (s *ratingImageService) DownloadURL(ctx context.Context, key string) (string, error) {
	exists, _, err := s.store.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", storage.ErrNotFound
	}
	return s.store.DownloadURL(ctx, key, ratingImageURLTTL)
}

func ratingImagePrefix(bookingID int32) string {
	return fmt.Sprintf("ratings/%d/", bookingID)
}

func isRatingImageKey(bookingID int32, key string) bool {
	rest, ok := strings.CutPrefix(key, ratingImagePrefix(bookingID))
	return ok && rest != "" && !strings.Contains(rest, "/")
}
