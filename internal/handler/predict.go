package handler

import (
	"net/http"

	"homeprice/internal/model"
	"homeprice/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps a prediction request body when no limit is configured
const DefaultMaxBodyBytes int64 = 1 << 20

// PredictHandler serves price estimates
type PredictHandler struct {
	predictor    *service.Predictor
	maxBodyBytes int64
	logger       *zap.Logger
}

// NewPredictHandler creates a new prediction handler. A non-positive
// maxBodyBytes falls back to DefaultMaxBodyBytes.
func NewPredictHandler(predictor *service.Predictor, maxBodyBytes int64, logger *zap.Logger) *PredictHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &PredictHandler{
		predictor:    predictor,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// Predict handles POST /predict_home_price
func (h *PredictHandler) Predict(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, &ValidationError{Cause: err})
		return
	}

	req, err := parsePredictRequest(body)
	if err != nil {
		h.logger.Debug("rejected prediction request",
			zap.Error(err),
			zap.String("body", describeBody(body)),
		)
		respondError(c, err)
		return
	}

	prediction, err := h.predictor.Predict(
		c.Request.Context(),
		req.Location,
		req.TotalSqft,
		float64(req.Bath),
		float64(req.BHK),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.PredictResponse{
		EstimatedPrice: prediction.Price,
		Status:         model.StatusSuccess,
	})
}
