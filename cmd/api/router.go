package main

import (
	"net/http"

	_ "upcoming-elections/docs"
	"upcoming-elections/internal/handler"
	"upcoming-elections/internal/middleware"
	"upcoming-elections/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func newRouter(search *handler.SearchHandler, api *handler.APIHandler) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.Logger(log.Logger), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", search.SearchForm)
	r.POST("/", search.Search)

	r.GET("/api/division-ids", api.DivisionIDs)
	r.GET("/api/elections", api.Elections)
	r.GET("/api/regions", api.Regions)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}
