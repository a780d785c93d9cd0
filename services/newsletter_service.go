package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
	"github.com/GodfreySilungwe/Quantic/repository"
	"github.com/GodfreySilungwe/Quantic/utils"
)

var ErrInvalidEmail = errors.New("invalid email")

type NewsletterService struct {
	Repo *repository.SubscriberRepository
}

func NewNewsletterService(repo *repository.SubscriberRepository) *NewsletterService {
	return &NewsletterService{Repo: repo}
}

// Subscribe is idempotent: a repeat signup reports already=true and writes
// nothing. The unique index on email backstops concurrent first signups.
func (s *NewsletterService) Subscribe(email string) (id uint, already bool, err error) {
	email = utils.NormalizeEmail(email)
	if !utils.ValidEmail(email) {
		return 0, false, ErrInvalidEmail
	}

	existing, err := s.Repo.FindByEmail(email)
	if err != nil {
		return 0, false, err
	}
	if existing != nil {
		return existing.ID, true, nil
	}

	sub := entity.Subscriber{Email: email}
	if err := s.Repo.Create(&sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if existing, ferr := s.Repo.FindByEmail(email); ferr == nil && existing != nil {
				return existing.ID, true, nil
			}
		}
		return 0, false, err
	}
	return sub.ID, false, nil
}
