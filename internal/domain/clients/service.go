package clients

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Create persiste una ficha nueva. El form ya validó formato; acá solo
// se exige que los campos obligatorios vengan.
func (s *Service) Create(ctx context.Context, f Form) (Client, error) {
	if f.FirstName == "" || f.LastName == "" {
		return Client{}, ErrInvalidInput
	}

	c := Client{
		ID:          uuid.NewString(),
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Address:     f.Address,
		City:        f.City,
		State:       f.State,
		Email:       f.Email,
		PhoneNumber: f.PhoneNumber,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

// Update reemplaza el registro completo, preservando CreatedAt.
func (s *Service) Update(ctx context.Context, id string, f Form) (Client, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}

	current.FirstName = f.FirstName
	current.LastName = f.LastName
	current.Address = f.Address
	current.City = f.City
	current.State = f.State
	current.Email = f.Email
	current.PhoneNumber = f.PhoneNumber

	if err := s.repo.Update(ctx, current); err != nil {
		return Client{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
