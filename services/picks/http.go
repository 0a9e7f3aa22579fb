package picks

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Picks is the interface for the picks service.
type Picks interface {
	SubmitPick(ctx context.Context, eventID string, matchID int, option, playerName string) error
	LockInPicks(ctx context.Context, eventID, playerName string) error
	Availability(eventID string, matchID int, playerName string) (*Availability, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Picks

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/events/:event_id/matches/:match_id/pick", h.submitPickHandler)
	r.GET("/events/:event_id/matches/:match_id/availability", h.availabilityHandler)
	r.POST("/events/:event_id/lock", h.lockInHandler)
}

type httpHandler struct {
	HTTPOptions
}

type submitPickRequest struct {
	Player string `json:"player"`
	Option string `json:"option"`
}

type lockInRequest struct {
	Player string `json:"player"`
}

func (h *httpHandler) submitPickHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "match id must be a number"})
		c.Abort()
		return
	}

	var request submitPickRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	err = h.Service.SubmitPick(c, eventID, matchID, request.Option, request.Player)
	if err != nil {
		var taken *OptionTakenError
		switch {
		case errors.As(err, &taken):
			c.JSON(http.StatusConflict, gin.H{"error": taken.Error(), "holder": taken.Holder})
		case errors.Is(err, ErrEventNotFound) || errors.Is(err, ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNoPlayer) || errors.Is(err, ErrPicksClosed) || errors.Is(err, ErrUnknownOption):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Could not submit pick: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pick recorded"})
}

func (h *httpHandler) availabilityHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "match id must be a number"})
		c.Abort()
		return
	}

	availability, err := h.Service.Availability(eventID, matchID, c.Query("player"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, availability)
}

func (h *httpHandler) lockInHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	var request lockInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	err := h.Service.LockInPicks(c, eventID, request.Player)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNoPlayer) || errors.Is(err, ErrMissingPicks):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Could not lock in picks: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Picks locked in"})
}
