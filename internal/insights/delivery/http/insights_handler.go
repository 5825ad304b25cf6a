package http

import (
	"errors"
	"net/http"
	"strconv"

	"bank-reviews-insights/internal/insights/dto"
	"bank-reviews-insights/internal/insights/service"
	"bank-reviews-insights/pkg/logger"

	"github.com/labstack/echo/v4"
)

// InsightsHandler handles HTTP requests for the exploration API.
type InsightsHandler struct {
	insightsService service.InsightsService
	predictService  service.PredictService
	logger          *logger.Logger
}

// NewInsightsHandler creates a new InsightsHandler. predictService may be
// nil when the prediction bridge is disabled; the route then returns 404.
func NewInsightsHandler(insightsService service.InsightsService, predictService service.PredictService, logger *logger.Logger) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		predictService:  predictService,
		logger:          logger,
	}
}

// RegisterRoutes registers the insights routes to the Echo group.
func (h *InsightsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/filters", h.GetFilters)
	g.GET("/summary/monthly", h.GetMonthlySummary)
	g.GET("/themes/breakdown", h.GetThemeBreakdown)
	g.GET("/priority", h.GetPriorityTable)
	g.GET("/reviews/samples", h.GetSampleReviews)
	if h.predictService != nil {
		g.POST("/predict", h.Predict)
	}
}

// GetFilters godoc
// @Summary List filter options
// @Description List the distinct banks, sources, themes and sentiment labels available for filtering
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.FilterOptions
// @Failure 500 {object} dto.ErrorResponse
// @Router /filters [get]
func (h *InsightsHandler) GetFilters(c echo.Context) error {
	opts, err := h.insightsService.Filters(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to load filter options", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, opts)
}

// GetMonthlySummary godoc
// @Summary Monthly review summary
// @Description Per month and bank review counts, average rating and sentiment shares
// @Tags insights
// @Produce  json
// @Param   bank       query   string  false   "Bank name"
// @Param   source     query   string  false   "Review source"
// @Param   theme      query   string  false   "Primary theme"
// @Param   sentiment  query   string  false   "Sentiment label"
// @Param   start_date query   string  false   "Start date (YYYY-MM-DD, inclusive)"
// @Param   end_date   query   string  false   "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {array} dto.MonthlySummaryRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /summary/monthly [get]
func (h *InsightsHandler) GetMonthlySummary(c echo.Context) error {
	var f dto.Filter
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid query parameters"})
	}

	rows, err := h.insightsService.MonthlySummary(c.Request().Context(), f)
	if err != nil {
		h.logger.Error("monthly summary failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GetThemeBreakdown godoc
// @Summary Theme sentiment breakdown
// @Description Review counts and average rating per bank, primary theme and sentiment
// @Tags insights
// @Produce  json
// @Param   bank       query   string  false   "Bank name"
// @Param   source     query   string  false   "Review source"
// @Param   start_date query   string  false   "Start date (YYYY-MM-DD, inclusive)"
// @Param   end_date   query   string  false   "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {array} dto.ThemeBreakdownRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /themes/breakdown [get]
func (h *InsightsHandler) GetThemeBreakdown(c echo.Context) error {
	var f dto.Filter
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid query parameters"})
	}

	rows, err := h.insightsService.ThemeBreakdown(c.Request().Context(), f)
	if err != nil {
		h.logger.Error("theme breakdown failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GetPriorityTable godoc
// @Summary Driver and pain-point priority table
// @Description Per bank and theme volume share, sentiment shares and driver/pain scores computed from aggregated counts
// @Tags insights
// @Produce  json
// @Param   bank       query   string  false   "Bank name"
// @Param   source     query   string  false   "Review source"
// @Param   start_date query   string  false   "Start date (YYYY-MM-DD, inclusive)"
// @Param   end_date   query   string  false   "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {array} analytics.PriorityTableRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /priority [get]
func (h *InsightsHandler) GetPriorityTable(c echo.Context) error {
	var f dto.Filter
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid query parameters"})
	}

	rows, err := h.insightsService.PriorityTable(c.Request().Context(), f)
	if err != nil {
		h.logger.Error("priority table failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GetSampleReviews godoc
// @Summary Sample reviews
// @Description Most recent reviews matching the filters, for evidence reading
// @Tags insights
// @Produce  json
// @Param   bank       query   string  false   "Bank name"
// @Param   source     query   string  false   "Review source"
// @Param   theme      query   string  false   "Primary theme"
// @Param   sentiment  query   string  false   "Sentiment label"
// @Param   start_date query   string  false   "Start date (YYYY-MM-DD, inclusive)"
// @Param   end_date   query   string  false   "End date (YYYY-MM-DD, inclusive)"
// @Param   limit      query   int     false   "Maximum number of rows (default 20, max 200)"
// @Success 200 {array} dto.SampleReview
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reviews/samples [get]
func (h *InsightsHandler) GetSampleReviews(c echo.Context) error {
	var f dto.Filter
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid query parameters"})
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid limit"})
		}
		limit = parsed
	}

	rows, err := h.insightsService.SampleReviews(c.Request().Context(), f, limit)
	if err != nil {
		h.logger.Error("sample reviews failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// Predict godoc
// @Summary Score a single review text
// @Description Run sentiment inference (and theme assignment when enabled) on one free-text review
// @Tags insights
// @Accept  json
// @Produce  json
// @Param   request body    dto.PredictRequest  true    "Review text"
// @Success 200 {object} dto.PredictResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /predict [post]
func (h *InsightsHandler) Predict(c echo.Context) error {
	var req dto.PredictRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.predictService.Predict(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		h.logger.Error("prediction failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}
