package routes

import (
	"GardenTrack/controllers"
	_ "GardenTrack/docs"
	"GardenTrack/middlewares"
	"GardenTrack/store"
	"GardenTrack/views"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func Routes(router *gin.Engine, plants *controllers.PlantController, harvests *controllers.HarvestController) {

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", plants.GetPlants)

	router.GET("/about", plants.About)

	router.GET("/create", plants.NewPlantForm)
	router.POST("/create", plants.AddPlant)

	router.GET("/plant/:plant_id", plants.GetPlant)

	router.POST("/harvest/:plant_id", harvests.AddHarvest)

	router.GET("/edit/:plant_id", plants.EditPlantForm)
	router.POST("/edit/:plant_id", plants.UpdatePlant)

	router.POST("/delete/:plant_id", plants.DeletePlant)
}

// NewRouter builds the engine with templates, middleware and every route
// bound to s.
func NewRouter(s store.Store, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := views.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middlewares.Logger(logger), middlewares.Recovery(logger))
	router.SetHTMLTemplate(tmpl)

	Routes(router,
		controllers.NewPlantController(s, logger),
		controllers.NewHarvestController(s, logger),
	)
	return router, nil
}
