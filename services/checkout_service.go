package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
	"github.com/GodfreySilungwe/Quantic/repository"
)

type CheckoutService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewCheckoutService(db *gorm.DB, repo *repository.OrderRepository) *CheckoutService {
	return &CheckoutService{DB: db, Repo: repo}
}

// MenuItemNotFoundError reports which line item referenced a missing id so
// the handler can echo it back.
type MenuItemNotFoundError struct {
	ID uint
}

func (e *MenuItemNotFoundError) Error() string {
	return fmt.Sprintf("Menu item %d not found", e.ID)
}

var ErrNoItems = errors.New("items is required")

type CheckoutItemIn struct {
	MenuItemID uint `json:"menu_item_id"`
	Qty        int  `json:"qty"`
}

type CheckoutReq struct {
	Items         []CheckoutItemIn `json:"items"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	CustomerPhone string           `json:"customer_phone"`
}

type CheckoutRes struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// Checkout creates the order and its line items in one transaction. Each
// line snapshots the menu item's current price into unit_price_cents; a
// missing menu item aborts the whole transaction so no partial order is
// ever persisted.
func (s *CheckoutService) Checkout(req *CheckoutReq) (*CheckoutRes, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	var out CheckoutRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Status:        "pending",
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		total := 0
		for _, in := range req.Items {
			item, err := s.Repo.GetMenuItemForUpdate(tx, in.MenuItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &MenuItemNotFoundError{ID: in.MenuItemID}
				}
				return err
			}

			qty := in.Qty
			if qty == 0 {
				qty = 1
			}
			total += item.PriceCents * qty

			oi := entity.OrderItem{
				OrderID:        order.ID,
				MenuItemID:     item.ID,
				Qty:            qty,
				UnitPriceCents: item.PriceCents,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.Repo.SetTotal(tx, order.ID, total); err != nil {
			return err
		}

		out = CheckoutRes{OrderID: order.ID, Status: order.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
