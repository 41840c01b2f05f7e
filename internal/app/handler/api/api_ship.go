package api

import (
	"errors"
	"net/http"
	"strconv"

	"ship_telemetry/internal/app/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ShipHandler struct {
	Repository *repository.Repository
}

// @Summary Register a ship
// @Description Create a ship with a unique MMSI; weight defaults to 1000
// @Tags ships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ship body object{name=string,mmsi=string,weight=number} true "Ship info"
// @Success 201 {object} ds.Ship
// @Failure 400 {object} object "error: message"
// @Failure 409 {object} object "error: message"
// @Router /ships/ [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var body struct {
		Name   string  `json:"name" binding:"required"`
		MMSI   string  `json:"mmsi" binding:"required"`
		Weight float64 `json:"weight"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ship, err := h.Repository.CreateShip(body.Name, body.MMSI, body.Weight)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Ship already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ship)
}

// @Summary List ships
// @Description Paginated ship listing ordered by id
// @Tags ships
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} ds.Ship
// @Router /ships/ [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	ships, err := h.Repository.GetAllShips(skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ships)
}

// @Summary Fleet overview
// @Description One entry per ship with its most recent telemetry attached
// @Tags ships
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.ShipOverview
// @Router /ships/overview [get]
func (h *ShipHandler) GetShipsOverviewAPI(c *gin.Context) {
	overview, err := h.Repository.GetShipsOverview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}
