package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"ship_telemetry/internal/app/ds"
	"ship_telemetry/internal/app/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TelemetryHandler struct {
	Repository *repository.Repository
}

// @Summary Ingest a telemetry point
// @Description Store one reading for the ship with the given MMSI. An unseen
// @Description MMSI registers the ship with a placeholder name. Open to
// @Description unauthenticated pushers (field devices carry no credentials).
// @Tags telemetry
// @Accept json
// @Produce json
// @Param mmsi path string true "Ship MMSI"
// @Param telemetry body object{rpm=number,speed=number,fuel_consumption=number,latitude=number,longitude=number,heading=number} true "Reading"
// @Success 201 {object} ds.Telemetry
// @Failure 400 {object} object "error: message"
// @Router /telemetry/{mmsi} [post]
func (h *TelemetryHandler) IngestTelemetryAPI(c *gin.Context) {
	mmsi := c.Param("mmsi")

	var body struct {
		RPM             *float64 `json:"rpm" binding:"required"`
		Speed           *float64 `json:"speed" binding:"required"`
		FuelConsumption *float64 `json:"fuel_consumption" binding:"required"`
		Latitude        *float64 `json:"latitude" binding:"required"`
		Longitude       *float64 `json:"longitude" binding:"required"`
		Heading         float64  `json:"heading"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ship, err := h.Repository.GetOrCreateShip(mmsi)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	point := &ds.Telemetry{
		RPM:             *body.RPM,
		Speed:           *body.Speed,
		FuelConsumption: *body.FuelConsumption,
		Latitude:        *body.Latitude,
		Longitude:       *body.Longitude,
		Heading:         body.Heading,
	}
	if err := h.Repository.CreateTelemetry(point, ship.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, point)
}

// @Summary Query telemetry history
// @Description Telemetry for one ship, newest first, optionally bounded to
// @Description [start_date, end_date] inclusive
// @Tags telemetry
// @Produce json
// @Security BearerAuth
// @Param mmsi path string true "Ship MMSI"
// @Param limit query int false "Max rows" default(100)
// @Param start_date query string false "RFC 3339 lower bound"
// @Param end_date query string false "RFC 3339 upper bound"
// @Success 200 {array} ds.Telemetry
// @Failure 404 {object} object "error: message"
// @Router /telemetry/{mmsi} [get]
func (h *TelemetryHandler) GetTelemetryAPI(c *gin.Context) {
	mmsi := c.Param("mmsi")

	ship, err := h.Repository.GetShipByMMSI(mmsi)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ship not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	start, err := parseTimeQuery(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := parseTimeQuery(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points, err := h.Repository.GetTelemetry(ship.ID, limit, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimeQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", raw)
}
