package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/GodfreySilungwe/Quantic/pkg/resp"
	"github.com/GodfreySilungwe/Quantic/services"
)

type NewsletterController struct {
	Svc *services.NewsletterService
}

func NewNewsletterController(svc *services.NewsletterService) *NewsletterController {
	return &NewsletterController{Svc: svc}
}

// POST /newsletter
func (ctl *NewsletterController) Signup(c *gin.Context) {
	var in struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, already, err := ctl.Svc.Subscribe(in.Email)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			resp.BadRequest(c, "Invalid email")
			return
		}
		resp.ServerError(c)
		return
	}

	if already {
		resp.OK(c, gin.H{"status": "already_subscribed"})
		return
	}
	resp.Created(c, gin.H{"status": "subscribed", "id": id})
}
