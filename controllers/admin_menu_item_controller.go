package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
	"github.com/GodfreySilungwe/Quantic/pkg/resp"
	"github.com/GodfreySilungwe/Quantic/repository"
	"github.com/GodfreySilungwe/Quantic/utils"
)

type AdminMenuItemController struct {
	Repo      *repository.MenuItemRepository
	ImagesDir string
}

func NewAdminMenuItemController(repo *repository.MenuItemRepository, imagesDir string) *AdminMenuItemController {
	return &AdminMenuItemController{Repo: repo, ImagesDir: imagesDir}
}

// menuItemIn is the one shape both body variants (JSON and multipart form)
// normalize into before any validation happens. Nil means "not supplied".
type menuItemIn struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int    `json:"price_cents"`
	Available   *bool   `json:"available"`
	CategoryID  *uint   `json:"category_id"`

	Image *multipart.FileHeader `json:"-"`
}

func bindMenuItemInput(c *gin.Context) (*menuItemIn, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return bindMenuItemForm(c)
	}
	var in menuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		return nil, err
	}
	return &in, nil
}

func bindMenuItemForm(c *gin.Context) (*menuItemIn, error) {
	var in menuItemIn

	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if v, ok := c.GetPostForm("price_cents"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("price_cents must be an integer")
		}
		in.PriceCents = &n
	}
	if v, ok := c.GetPostForm("available"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("available must be a boolean")
		}
		in.Available = &b
	}
	if v, ok := c.GetPostForm("category_id"); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.New("category_id must be an integer")
		}
		id := uint(n)
		in.CategoryID = &id
	}

	if file, err := c.FormFile("image"); err == nil {
		in.Image = file
	}
	return &in, nil
}

// saveImage writes the upload under the images dir with a timestamp-prefixed
// name so re-uploads of the same filename do not collide.
func (ctl *AdminMenuItemController) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := utils.StampedFilename(file.Filename, time.Now())
	path, err := utils.ResolveImagePath(ctl.ImagesDir, name)
	if err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return name, nil
}

// GET /admin/menu_items
func (ctl *AdminMenuItemController) List(c *gin.Context) {
	items, err := ctl.Repo.ListAll()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}

// POST /admin/menu_items
func (ctl *AdminMenuItemController) Create(c *gin.Context) {
	in, err := bindMenuItemInput(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Name == nil || *in.Name == "" || in.PriceCents == nil {
		resp.BadRequest(c, "Missing name or price_cents")
		return
	}
	if *in.PriceCents < 0 {
		resp.BadRequest(c, "price_cents must not be negative")
		return
	}

	item := entity.MenuItem{
		Name:       *in.Name,
		PriceCents: *in.PriceCents,
		Available:  true,
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}

	if in.Image != nil {
		// best-effort on create: a failed write leaves the item imageless
		_ = os.MkdirAll(ctl.ImagesDir, 0o755)
		if name, err := ctl.saveImage(c, in.Image); err == nil {
			item.ImageFilename = name
		}
	}

	if err := ctl.Repo.Create(&item); err != nil {
		resp.ServerError(c)
		return
	}
	resp.Created(c, item)
}

// PUT/PATCH /admin/menu_items/:id
func (ctl *AdminMenuItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c)
		return
	}

	in, err := bindMenuItemInput(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.PriceCents != nil && *in.PriceCents < 0 {
		resp.BadRequest(c, "price_cents must not be negative")
		return
	}

	if in.Image != nil {
		_ = os.MkdirAll(ctl.ImagesDir, 0o755)
		name, err := ctl.saveImage(c, in.Image)
		if err != nil {
			// unlike create, a failed save aborts the whole update
			resp.ServerError(c)
			return
		}
		item.ImageFilename = name
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.PriceCents != nil {
		item.PriceCents = *in.PriceCents
	}
	if in.Available != nil {
		item.Available = *in.Available
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}

	if err := ctl.Repo.Update(item); err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu_items/:id
// Refused while any order item references the menu item, so order history
// keeps pointing at a real row.
func (ctl *AdminMenuItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	orderIDs, err := ctl.Repo.ReferencingOrderIDs(uint(id))
	if err != nil {
		resp.ServerError(c)
		return
	}
	if len(orderIDs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "menu item is referenced by existing orders",
			"order_ids": orderIDs,
		})
		return
	}

	if err := ctl.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"status": "deleted"})
}
