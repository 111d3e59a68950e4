package controllers

import (
	"net/http"
	"net/url"

	"GardenTrack/models"
	"GardenTrack/store"
	"GardenTrack/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlantController serves the plant pages. Every handler reads fresh state
// from the store.
type PlantController struct {
	store  store.Store
	logger *zap.Logger
}

func NewPlantController(s store.Store, logger *zap.Logger) *PlantController {
	return &PlantController{store: s, logger: logger}
}

// PlantPath is the detail page of the plant with the given id.
func PlantPath(id string) string {
	return "/plant/" + url.PathEscape(id)
}

// GetPlants godoc
// @Summary List plants
// @Description Render the list of every plant, in no particular order.
// @Tags Plants
// @Produce html
// @Success 200 {string} string "plants_list.html"
// @Failure 500 {string} string "storage failure"
// @Router / [get]
func (pc *PlantController) GetPlants(c *gin.Context) {
	plants, err := pc.store.FindAllPlants(c.Request.Context())
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, views.PlantsList, gin.H{"plants": plants})
}

// About godoc
// @Summary About page
// @Tags Pages
// @Produce html
// @Success 200 {string} string "about.html"
// @Router /about [get]
func (pc *PlantController) About(c *gin.Context) {
	c.HTML(http.StatusOK, views.About, gin.H{"title": "About"})
}

// NewPlantForm godoc
// @Summary Plant creation form
// @Tags Plants
// @Produce html
// @Success 200 {string} string "create.html"
// @Router /create [get]
func (pc *PlantController) NewPlantForm(c *gin.Context) {
	c.HTML(http.StatusOK, views.Create, gin.H{"title": "New plant"})
}

// AddPlant godoc
// @Summary Create a plant
// @Description Insert a plant built from the submitted form and redirect to its detail page.
// @Tags Plants
// @Accept x-www-form-urlencoded
// @Produce html
// @Param plant_name formData string true "Plant name"
// @Param variety formData string true "Variety"
// @Param photo formData string true "Photo URL"
// @Param date_planted formData string true "Date planted, stored as given"
// @Success 303 {string} string "redirect to /plant/{plant_id}"
// @Failure 400 {string} string "missing field"
// @Failure 500 {string} string "storage failure"
// @Router /create [post]
func (pc *PlantController) AddPlant(c *gin.Context) {
	plant, ok := plantFromForm(c)
	if !ok {
		return
	}

	id, err := pc.store.InsertPlant(c.Request.Context(), plant)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	pc.logger.Info("Plant created", zap.String("plant_id", id), zap.String("name", plant.Name))
	c.Redirect(http.StatusSeeOther, PlantPath(id))
}

// GetPlant godoc
// @Summary Plant detail
// @Description Render one plant with its harvests. A malformed or unknown id renders the error page.
// @Tags Plants
// @Produce html
// @Param plant_id path string true "Plant ID (24 hex characters)"
// @Success 200 {string} string "detail.html, or error.html for a malformed or unknown id"
// @Failure 500 {string} string "storage failure"
// @Router /plant/{plant_id} [get]
func (pc *PlantController) GetPlant(c *gin.Context) {
	plant, ok := pc.findPlant(c)
	if !ok {
		return
	}

	harvests, err := pc.store.FindHarvestsByPlant(c.Request.Context(), c.Param("plant_id"))
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, views.Detail, gin.H{
		"title":    plant.Name,
		"plant":    plant,
		"harvests": harvests,
	})
}

// EditPlantForm godoc
// @Summary Plant edit form
// @Description Render the edit form pre-filled with the plant. A malformed or unknown id renders the error page.
// @Tags Plants
// @Produce html
// @Param plant_id path string true "Plant ID (24 hex characters)"
// @Success 200 {string} string "edit.html, or error.html for a malformed or unknown id"
// @Failure 500 {string} string "storage failure"
// @Router /edit/{plant_id} [get]
func (pc *PlantController) EditPlantForm(c *gin.Context) {
	plant, ok := pc.findPlant(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, views.Edit, gin.H{"title": "Edit " + plant.Name, "plant": plant})
}

// UpdatePlant godoc
// @Summary Edit a plant
// @Description Replace all four fields of the plant. The plant is not looked up first: an unknown id is a no-op that still redirects.
// @Tags Plants
// @Accept x-www-form-urlencoded
// @Produce html
// @Param plant_id path string true "Plant ID (24 hex characters)"
// @Param plant_name formData string true "Plant name"
// @Param variety formData string true "Variety"
// @Param photo formData string true "Photo URL"
// @Param date_planted formData string true "Date planted, stored as given"
// @Success 303 {string} string "redirect to /plant/{plant_id}"
// @Failure 400 {string} string "missing field"
// @Failure 500 {string} string "malformed id or storage failure"
// @Router /edit/{plant_id} [post]
func (pc *PlantController) UpdatePlant(c *gin.Context) {
	id := c.Param("plant_id")
	if _, err := store.ParseID(id); err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	plant, ok := plantFromForm(c)
	if !ok {
		return
	}

	if err := pc.store.UpdatePlant(c.Request.Context(), id, plant); err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusSeeOther, PlantPath(id))
}

// DeletePlant godoc
// @Summary Delete a plant
// @Description Delete the plant, then every harvest whose plant_id matches. The two deletions are not atomic.
// @Tags Plants
// @Produce html
// @Param plant_id path string true "Plant ID (24 hex characters)"
// @Success 303 {string} string "redirect to /"
// @Failure 500 {string} string "malformed id or storage failure"
// @Router /delete/{plant_id} [post]
func (pc *PlantController) DeletePlant(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("plant_id")

	plants, err := pc.store.DeletePlant(ctx, id)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	pc.logger.Info("Deleted plant", zap.String("plant_id", id), zap.Int64("deleted", plants))

	harvests, err := pc.store.DeleteHarvestsByPlant(ctx, id)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	pc.logger.Info("Deleted harvests", zap.String("plant_id", id), zap.Int64("deleted", harvests))

	c.Redirect(http.StatusSeeOther, "/")
}

// findPlant resolves the plant_id path parameter. Malformed and unknown ids
// both render the error page; the caller only proceeds when ok is true.
func (pc *PlantController) findPlant(c *gin.Context) (plant models.Plant, ok bool) {
	id := c.Param("plant_id")

	lookup, err := pc.store.FindPlantByID(c.Request.Context(), id)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return models.Plant{}, false
	}
	if !lookup.Found() {
		pc.logger.Debug("Plant lookup failed", zap.String("plant_id", id), zap.Stringer("status", lookup.Status))
		c.HTML(http.StatusOK, views.Error, gin.H{"title": "Not found"})
		return models.Plant{}, false
	}
	return lookup.Plant, true
}

func plantFromForm(c *gin.Context) (models.Plant, bool) {
	plant, err := models.NewPlant(
		c.PostForm("plant_name"),
		c.PostForm("variety"),
		c.PostForm("photo"),
		c.PostForm("date_planted"),
	)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return models.Plant{}, false
	}
	return plant, true
}
