package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/GodfreySilungwe/Quantic/pkg/resp"
	"github.com/GodfreySilungwe/Quantic/repository"
	"github.com/GodfreySilungwe/Quantic/services"
)

type OrderController struct {
	Svc  *services.CheckoutService
	Repo *repository.OrderRepository
}

func NewOrderController(svc *services.CheckoutService, repo *repository.OrderRepository) *OrderController {
	return &OrderController{Svc: svc, Repo: repo}
}

// POST /cart/checkout
func (ctl *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if len(req.Items) == 0 || req.CustomerName == "" {
		resp.BadRequest(c, "Missing items or customer name")
		return
	}

	res, err := ctl.Svc.Checkout(&req)
	if err != nil {
		var nf *services.MenuItemNotFoundError
		if errors.As(err, &nf) {
			resp.BadRequest(c, nf.Error())
			return
		}
		if errors.Is(err, services.ErrNoItems) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c)
		return
	}

	resp.Created(c, res)
}

// GET /admin/orders
func (ctl *OrderController) AdminList(c *gin.Context) {
	orders, err := ctl.Repo.ListWithItems()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, orders)
}
