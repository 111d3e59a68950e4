package controllers

import (
	"net/http"

	"GardenTrack/models"
	"GardenTrack/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HarvestController struct {
	store  store.Store
	logger *zap.Logger
}

func NewHarvestController(s store.Store, logger *zap.Logger) *HarvestController {
	return &HarvestController{store: s, logger: logger}
}

// AddHarvest godoc
// @Summary Record a harvest
// @Description Insert a harvest for the plant in the path and redirect to its detail page. The plant is not checked for existence.
// @Tags Harvests
// @Accept x-www-form-urlencoded
// @Produce html
// @Param plant_id path string true "Plant ID"
// @Param harvested_amount formData string true "Amount harvested, e.g. 3 tomatoes"
// @Param date_planted formData string true "Harvest date, stored as given"
// @Success 303 {string} string "redirect to /plant/{plant_id}"
// @Failure 400 {string} string "missing field"
// @Failure 500 {string} string "storage failure"
// @Router /harvest/{plant_id} [post]
func (hc *HarvestController) AddHarvest(c *gin.Context) {
	plantID := c.Param("plant_id")

	// The harvest date arrives in the date_planted field.
	harvest, err := models.NewHarvest(plantID, c.PostForm("harvested_amount"), c.PostForm("date_planted"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	id, err := hc.store.InsertHarvest(c.Request.Context(), harvest)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	hc.logger.Info("Harvest recorded", zap.String("harvest_id", id), zap.String("plant_id", plantID))
	c.Redirect(http.StatusSeeOther, PlantPath(plantID))
}
