package controllers

import (
	"os"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/GodfreySilungwe/Quantic/pkg/resp"
	"github.com/GodfreySilungwe/Quantic/utils"
)

type GalleryController struct {
	ImagesDir string
}

func NewGalleryController(imagesDir string) *GalleryController {
	return &GalleryController{ImagesDir: imagesDir}
}

// GET /gallery
func (ctl *GalleryController) List(c *gin.Context) {
	entries, err := os.ReadDir(ctl.ImagesDir)
	if err != nil {
		// missing directory means an empty gallery, not a failure
		resp.OK(c, []string{})
		return
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	resp.OK(c, names)
}

// GET /images/:filename
func (ctl *GalleryController) Serve(c *gin.Context) {
	name := c.Param("filename")

	path, err := utils.ResolveImagePath(ctl.ImagesDir, name)
	if err != nil {
		resp.NotFound(c, "image not found")
		return
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		resp.NotFound(c, "image not found")
		return
	}

	c.File(path)
}
