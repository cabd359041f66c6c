package pets

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

// Create registra la mascota asignando el dueño en el acto. imagePath
// puede venir vacío (imagen opcional).
func (s *Service) Create(ctx context.Context, ownerID string, f Form, imagePath string) (Pet, error) {
	if ownerID == "" || f.Name == "" || f.ParsedBirthday.IsZero() {
		return Pet{}, ErrInvalidInput
	}
	if !validChoice(f.Sex, SexChoices) || !validChoice(f.Species, SpeciesChoices) || !validChoice(f.Breed, BreedChoices) {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		Name:      f.Name,
		Birthday:  f.ParsedBirthday,
		Sex:       f.Sex,
		Species:   f.Species,
		Breed:     f.Breed,
		Color:     f.Color,
		OwnerID:   ownerID,
		ImagePath: imagePath,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update reemplaza el registro completo excepto el dueño: el owner
// solo cambia en el alta o por cascada de borrado, nunca por edición.
// imagePath vacío conserva la imagen actual.
func (s *Service) Update(ctx context.Context, id string, f Form, imagePath string) (Pet, error) {
	if f.Name == "" || f.ParsedBirthday.IsZero() {
		return Pet{}, ErrInvalidInput
	}
	if !validChoice(f.Sex, SexChoices) || !validChoice(f.Species, SpeciesChoices) || !validChoice(f.Breed, BreedChoices) {
		return Pet{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	current.Name = f.Name
	current.Birthday = f.ParsedBirthday
	current.Sex = f.Sex
	current.Species = f.Species
	current.Breed = f.Breed
	current.Color = f.Color
	if imagePath != "" {
		current.ImagePath = imagePath
	}
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validChoice(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
