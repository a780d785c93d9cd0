package controllers

import (
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"

	"github.com/GodfreySilungwe/Quantic/entity"
	"github.com/GodfreySilungwe/Quantic/pkg/resp"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

type menuItemOut struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	PriceCents    int    `json:"price_cents"`
	Available     bool   `json:"available"`
	ImageFilename string `json:"image_filename"`
}

type menuCategoryOut struct {
	ID    uint          `json:"id"`
	Name  string        `json:"name"`
	Items []menuItemOut `json:"items"`
}

// GET /menu
func (ctl *MenuController) List(c *gin.Context) {
	var cats []entity.Category
	if err := ctl.DB.Order("position").Find(&cats).Error; err != nil {
		resp.ServerError(c)
		return
	}

	out := make([]menuCategoryOut, 0, len(cats))
	for _, cat := range cats {
		var items []entity.MenuItem
		if err := ctl.DB.Where("category_id = ?", cat.ID).Order("id").Find(&items).Error; err != nil {
			resp.ServerError(c)
			return
		}

		itemsOut := make([]menuItemOut, 0, len(items))
		for _, i := range items {
			itemsOut = append(itemsOut, menuItemOut{
				ID:            i.ID,
				Name:          i.Name,
				Description:   i.Description,
				PriceCents:    i.PriceCents,
				Available:     i.Available,
				ImageFilename: i.ImageFilename,
			})
		}
		out = append(out, menuCategoryOut{ID: cat.ID, Name: cat.Name, Items: itemsOut})
	}

	resp.OK(c, out)
}
