package service

import (
	"context"
	"strings"
	"time"

	"tcgurt/internal/identity"
	"tcgurt/internal/model"
	"tcgurt/internal/repository"
	apperrors "tcgurt/pkg/app_errors"
)

type EventService interface {
	GetFutureEvents(ctx context.Context, filter model.ListEventsFilter) ([]*model.Event, error)
	// Create 只有 profile 標記為主辦者的使用者可以建立活動
	Create(ctx context.Context, callerID string, params model.CreateEventParams) (*model.Event, error)
}

type EventServiceImpl struct {
	repo     repository.EventRepository
	profiles identity.ProfileProvider
	now      func() time.Time
}

func NewEventService(repo repository.EventRepository, profiles identity.ProfileProvider) EventService {
	return &EventServiceImpl{repo: repo, profiles: profiles, now: time.Now}
}

func (s *EventServiceImpl) GetFutureEvents(ctx context.Context, filter model.ListEventsFilter) ([]*model.Event, error) {
	if filter.Month != nil && (*filter.Month < 0 || *filter.Month > 11) {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.ListFuture(ctx, s.now(), filter)
}

func (s *EventServiceImpl) Create(ctx context.Context, callerID string, params model.CreateEventParams) (*model.Event, error) {
	if callerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if err := s.validate(params); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !profile.IsOrganizer {
		return nil, apperrors.ErrNotOrganizer
	}

	event := &model.Event{
		Name:        strings.TrimSpace(params.Name),
		Description: params.Description,
		Organizer:   firstNonEmpty(params.Organizer, profile.Name),
		Location:    optional(firstNonEmpty(params.Location, profile.Location)),
		StartDate:   params.StartDate,
		FbLink:      optional(firstNonEmpty(params.FbLink, profile.FbLink)),
		Price:       params.Price,
	}
	if event.Organizer == "" {
		return nil, apperrors.ErrOrganizerRequired
	}

	return s.repo.Create(ctx, event)
}

// validate 在讀取 profile 與寫入 DB 之前檢查輸入
func (s *EventServiceImpl) validate(params model.CreateEventParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return apperrors.ErrInvalidInput
	}
	if params.Price < 0 {
		return apperrors.ErrInvalidPrice
	}
	if params.StartDate.IsZero() {
		return apperrors.ErrInvalidStartDate
	}
	if !params.StartDate.After(s.now()) {
		return apperrors.ErrStartDateInPast
	}
	return nil
}

func firstNonEmpty(explicit *string, fallback string) string {
	if explicit != nil {
		if v := strings.TrimSpace(*explicit); v != "" {
			return v
		}
	}
	return fallback
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
