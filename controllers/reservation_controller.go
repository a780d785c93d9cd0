package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GodfreySilungwe/Quantic/pkg/resp"
	"github.com/GodfreySilungwe/Quantic/repository"
	"github.com/GodfreySilungwe/Quantic/services"
)

type ReservationController struct {
	Svc        *services.ReservationService
	Newsletter *services.NewsletterService
	Repo       *repository.ReservationRepository
}

func NewReservationController(svc *services.ReservationService, newsletter *services.NewsletterService, repo *repository.ReservationRepository) *ReservationController {
	return &ReservationController{Svc: svc, Newsletter: newsletter, Repo: repo}
}

type reservationIn struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Guests     int    `json:"guests"`
	TimeSlot   string `json:"time_slot"`
	Newsletter bool   `json:"newsletter"`
}

// Reservation.jsx sends local datetimes without a zone; accept both.
var timeSlotLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

func parseTimeSlot(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeSlotLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// POST /reservations
func (ctl *ReservationController) Create(c *gin.Context) {
	var in reservationIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Name == "" || in.Email == "" || in.TimeSlot == "" {
		resp.BadRequest(c, "Missing name, email or time_slot")
		return
	}

	slot, err := parseTimeSlot(in.TimeSlot)
	if err != nil {
		resp.BadRequest(c, "Invalid time_slot")
		return
	}

	res, err := ctl.Svc.Reserve(&services.ReserveReq{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Guests:     in.Guests,
		TimeSlot:   slot,
		Newsletter: in.Newsletter,
	})
	if err != nil {
		if errors.Is(err, services.ErrNoTables) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c)
		return
	}

	// Opting in on the reservation form also subscribes the address.
	// Subscribe is idempotent, so a repeat opt-in is harmless.
	if in.Newsletter {
		if _, _, err := ctl.Newsletter.Subscribe(in.Email); err != nil && !errors.Is(err, services.ErrInvalidEmail) {
			resp.ServerError(c)
			return
		}
	}

	resp.Created(c, gin.H{
		"reservation_id": res.ReservationID,
		"table_number":   res.TableNumber,
		"time_slot":      res.TimeSlot,
	})
}

// GET /admin/reservations
func (ctl *ReservationController) AdminList(c *gin.Context) {
	all, err := ctl.Repo.ListWithCustomer()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, all)
}
