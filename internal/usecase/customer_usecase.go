package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidCustomerName   = errors.New("invalid customer name")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
)

type CreateCustomerInput struct {
	Name1         string
	Name2         string
	Name3         string
	Address       entities.Address
	Communication *entities.Communication
	DailyRate     decimal.NullDecimal
}

type ICustomerUseCase interface {
	Create(ctx context.Context, actor string, in CreateCustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
	now  func() time.Time
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *CustomerUseCase) Create(ctx context.Context, actor string, in CreateCustomerInput) (entities.Customer, error) {
	name1 := strings.TrimSpace(in.Name1)
	if name1 == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}
	if negative(in.DailyRate) {
		return entities.Customer{}, ErrInvalidDailyRate
	}
	c := entities.Customer{
		ID:            uuid.NewString(),
		Name1:         name1,
		Name2:         strings.TrimSpace(in.Name2),
		Name3:         strings.TrimSpace(in.Name3),
		Address:       in.Address,
		Communication: in.Communication,
		DailyRate:     in.DailyRate,
	}
	c.Touch(actor, u.now())

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Customer{}, ErrCustomerAlreadyExists
		}
		return entities.Customer{}, err
	}
	log.Printf("[customer][usecase] created customer_id=%s", created.ID)
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}
