package services

import (
	"errors"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
	"github.com/GodfreySilungwe/Quantic/repository"
	"github.com/GodfreySilungwe/Quantic/utils"
)

// TableCount is the fixed universe of tables, numbered 1..TableCount.
const TableCount = 30

// allocateRetries bounds how often a losing writer recomputes the free set
// after a duplicate-key collision on (time_slot, table_number).
const allocateRetries = 3

var ErrNoTables = errors.New("no tables available for this time slot")

type ReservationService struct {
	DB        *gorm.DB
	Repo      *repository.ReservationRepository
	Customers *repository.CustomerRepository
}

func NewReservationService(db *gorm.DB, repo *repository.ReservationRepository, customers *repository.CustomerRepository) *ReservationService {
	return &ReservationService{DB: db, Repo: repo, Customers: customers}
}

type ReserveReq struct {
	Name       string
	Email      string
	Phone      string
	Guests     int
	TimeSlot   time.Time
	Newsletter bool
}

type ReserveRes struct {
	ReservationID uint
	TableNumber   int
	TimeSlot      time.Time
	CustomerID    uint
}

// Reserve upserts the customer and books a random free table for the slot,
// all in one transaction. A concurrent booking of the same table surfaces
// as gorm.ErrDuplicatedKey on commit; we then recompute the free set and
// try again.
func (s *ReservationService) Reserve(req *ReserveReq) (*ReserveRes, error) {
	email := utils.NormalizeEmail(req.Email)
	guests := req.Guests
	if guests == 0 {
		guests = 1
	}

	var out ReserveRes
	var err error
	for attempt := 0; attempt <= allocateRetries; attempt++ {
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			cust, err := s.upsertCustomer(tx, req.Name, email, req.Phone, req.Newsletter)
			if err != nil {
				return err
			}

			table, err := s.pickTable(tx, req.TimeSlot)
			if err != nil {
				return err
			}

			res := entity.Reservation{
				CustomerID:  cust.ID,
				TimeSlot:    req.TimeSlot,
				TableNumber: table,
				Guests:      guests,
			}
			if err := s.Repo.Create(tx, &res); err != nil {
				return err
			}

			out = ReserveRes{
				ReservationID: res.ID,
				TableNumber:   res.TableNumber,
				TimeSlot:      res.TimeSlot,
				CustomerID:    cust.ID,
			}
			return nil
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNoTables
		}
		return nil, err
	}
	return &out, nil
}

// pickTable computes the free tables for the slot and draws one at random.
func (s *ReservationService) pickTable(tx *gorm.DB, slot time.Time) (int, error) {
	taken, err := s.Repo.TakenTables(tx, slot)
	if err != nil {
		return 0, err
	}

	used := make(map[int]bool, len(taken))
	for _, t := range taken {
		used[t] = true
	}

	available := make([]int, 0, TableCount)
	for t := 1; t <= TableCount; t++ {
		if !used[t] {
			available = append(available, t)
		}
	}
	if len(available) == 0 {
		return 0, ErrNoTables
	}
	return available[rand.Intn(len(available))], nil
}

// upsertCustomer merges onto an existing row rather than overwriting it:
// name always wins unless blank, phone only when supplied, newsletter only
// ever flips to true.
func (s *ReservationService) upsertCustomer(tx *gorm.DB, name, email, phone string, newsletter bool) (*entity.Customer, error) {
	cust, err := s.Customers.FindByEmail(tx, email)
	if err != nil {
		return nil, err
	}

	if cust == nil {
		cust = &entity.Customer{
			Name:       name,
			Email:      email,
			Phone:      phone,
			Newsletter: newsletter,
		}
		if err := s.Customers.Create(tx, cust); err != nil {
			return nil, err
		}
		return cust, nil
	}

	if name != "" {
		cust.Name = name
	}
	if phone != "" {
		cust.Phone = phone
	}
	if newsletter {
		cust.Newsletter = true
	}
	if err := s.Customers.Save(tx, cust); err != nil {
		return nil, err
	}
	return cust, nil
}
