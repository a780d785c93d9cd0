package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
	"github.com/GodfreySilungwe/Quantic/pkg/resp"
	"github.com/GodfreySilungwe/Quantic/repository"
)

type AdminCategoryController struct {
	Repo *repository.CategoryRepository
}

func NewAdminCategoryController(repo *repository.CategoryRepository) *AdminCategoryController {
	return &AdminCategoryController{Repo: repo}
}

// GET /admin/categories
func (ctl *AdminCategoryController) List(c *gin.Context) {
	cats, err := ctl.Repo.ListOrdered()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, cats)
}

type categoryIn struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
}

// POST /admin/categories
func (ctl *AdminCategoryController) Create(c *gin.Context) {
	var in categoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Name == nil || *in.Name == "" {
		resp.BadRequest(c, "Missing name")
		return
	}

	cat := entity.Category{Name: *in.Name}
	if in.Position != nil {
		cat.Position = *in.Position
	}
	if err := ctl.Repo.Create(&cat); err != nil {
		resp.ServerError(c)
		return
	}
	resp.Created(c, cat)
}

// PUT/PATCH /admin/categories/:id
func (ctl *AdminCategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cat, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c)
		return
	}

	var in categoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Name != nil {
		cat.Name = *in.Name
	}
	if in.Position != nil {
		cat.Position = *in.Position
	}

	if err := ctl.Repo.Update(cat); err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/categories/:id
// Deleting a category that still has menu items is refused; reassign or
// delete the items first.
func (ctl *AdminCategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	itemIDs, err := ctl.Repo.AttachedMenuItemIDs(uint(id))
	if err != nil {
		resp.ServerError(c)
		return
	}
	if len(itemIDs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         "category has menu items",
			"menu_item_ids": itemIDs,
		})
		return
	}

	if err := ctl.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"status": "deleted"})
}
