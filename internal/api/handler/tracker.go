package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/skinpulse/skinpulse/internal/market"
	"github.com/skinpulse/skinpulse/internal/service"
)

type TrackerHandler struct {
	tracker   *service.TrackerService
	refresher *service.RefreshService
	log       domain.Logger
}

func NewTrackerHandler(tracker *service.TrackerService, refresher *service.RefreshService, log domain.Logger) *TrackerHandler {
	return &TrackerHandler{
		tracker:   tracker,
		refresher: refresher,
		log:       log,
	}
}

// GetPrice - resolve a skin name plus modifiers into a priced quote.
func (h *TrackerHandler) GetPrice(c *gin.Context) {
	req, ok := requestFromQuery(c)
	if !ok {
		return
	}

	resp := h.tracker.Price(req)
	if resp == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "no price found",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetChart - reconciled price history for a skin over a trailing window.
func (h *TrackerHandler) GetChart(c *gin.Context) {
	req, ok := requestFromQuery(c)
	if !ok {
		return
	}

	period := entity.PriceStatsPeriod(c.DefaultQuery("period", string(entity.Period30d)))
	switch period {
	case entity.Period7d, entity.Period14d, entity.Period30d:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid period, expected 7d, 14d or 30d",
		})
		return
	}

	c.JSON(http.StatusOK, h.tracker.Chart(c.Request.Context(), req, period))
}

// GetTrending - ranked trending items, optionally restricted by category.
func (h *TrackerHandler) GetTrending(c *gin.Context) {
	category := entity.Category(c.Query("category"))

	items := h.tracker.Trending(category)

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// TriggerRefresh - run one refresh cycle now instead of waiting for the
// scheduler.
func (h *TrackerHandler) TriggerRefresh(c *gin.Context) {
	if err := h.refresher.RefreshPrices(c.Request.Context()); err != nil {
		h.log.Error("manual refresh failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "refresh failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *TrackerHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func requestFromQuery(c *gin.Context) (market.Request, bool) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "name is required",
		})
		return market.Request{}, false
	}

	return market.Request{
		Name:     name,
		Wear:     entity.Wear(c.Query("wear")),
		StatTrak: c.Query("stattrak") == "true",
		Souvenir: c.Query("souvenir") == "true",
	}, true
}
