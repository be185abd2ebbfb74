package handler

import "github.com/gin-gonic/gin"

// Route paths
const (
	PathLocationNames    = "/get_location_names"
	PathPredictHomePrice = "/predict_home_price"
)

// RegisterRoutes mounts the prediction API on r
func RegisterRoutes(r gin.IRoutes, locations *LocationHandler, predict *PredictHandler) {
	r.GET(PathLocationNames, locations.List)
	r.POST(PathPredictHomePrice, predict.Predict)
}
