package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-optimizer/internal/pkg/utils"
	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeocodeHandler - обработчик геокодирования
type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Geocode godoc
// @Summary Geocode a place name
// @Description Returns the coordinates of the best match for a free-text place name
// @Tags Geocoding
// @Produce json
// @Param place query string true "Place name"
// @Success 200 {object} domain.Place
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /geocode [get]
func (h *GeocodeHandler) Geocode(c *fiber.Ctx) error {
	req := dto.GeocodeRequest{
		Place: c.Query("place"),
	}

	place, err := h.geocodeUC.Geocode(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, place)
}
