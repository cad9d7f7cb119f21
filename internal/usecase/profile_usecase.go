package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"inhouse/internal/config"
	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProfileNotFound      = errors.New("user profile not found")
	ErrProfileAlreadyExists = errors.New("user profile already exists")
	ErrUnsupportedLanguage  = errors.New("unsupported language")
	ErrInvalidDailyRate     = errors.New("invalid daily rate")
)

type CreateProfileInput struct {
	UserID          string
	Address         entities.Address
	Communication   entities.Communication
	Language        string
	DailyRate       decimal.Decimal
	Job             string
	PersonnelNo     string
	HoursPerWeek    decimal.NullDecimal
	HolidaysPerYear decimal.NullDecimal
}

type IProfileUseCase interface {
	Create(ctx context.Context, actor string, in CreateProfileInput) (entities.UserProfile, error)
	GetByUserID(ctx context.Context, userID string) (entities.UserProfile, error)
}

type ProfileUseCase struct {
	repo interfaces.IUserProfileRepository
	cfg  config.Config
	now  func() time.Time
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IUserProfileRepository, cfg config.Config) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, cfg: cfg, now: func() time.Time { return time.Now().UTC() }}
}

// Create stores the profile of a user. A user has at most one profile.
func (u *ProfileUseCase) Create(ctx context.Context, actor string, in CreateProfileInput) (entities.UserProfile, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return entities.UserProfile{}, ErrInvalidActor
	}
	lang := strings.TrimSpace(in.Language)
	if lang == "" {
		lang = u.cfg.DefaultLanguage()
	} else if !u.cfg.SupportsLanguage(lang) && lang != u.cfg.DefaultLanguage() {
		return entities.UserProfile{}, ErrUnsupportedLanguage
	}
	if in.DailyRate.IsNegative() || negative(in.HoursPerWeek) || negative(in.HolidaysPerYear) {
		return entities.UserProfile{}, ErrInvalidDailyRate
	}

	existing, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if existing.ID != "" {
		return entities.UserProfile{}, ErrProfileAlreadyExists
	}

	p := entities.UserProfile{
		ID:              uuid.NewString(),
		UserID:          userID,
		Address:         in.Address,
		Communication:   in.Communication,
		Language:        lang,
		DailyRate:       in.DailyRate,
		Job:             strings.TrimSpace(in.Job),
		PersonnelNo:     strings.TrimSpace(in.PersonnelNo),
		HoursPerWeek:    in.HoursPerWeek,
		HolidaysPerYear: in.HolidaysPerYear,
	}
	p.Touch(actor, u.now())

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.UserProfile{}, ErrProfileAlreadyExists
		}
		return entities.UserProfile{}, err
	}
	log.Printf("[profile][usecase] created user_id=%s language=%s", created.UserID, created.Language)
	return created, nil
}

func (u *ProfileUseCase) GetByUserID(ctx context.Context, userID string) (entities.UserProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.UserProfile{}, ErrInvalidActor
	}
	p, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if p.ID == "" {
		return entities.UserProfile{}, ErrProfileNotFound
	}
	return p, nil
}
