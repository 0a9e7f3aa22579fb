package admin

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	league "github.com/wrestlepicks/league-sync/repos/league"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Admin is the interface for the admin service.
type Admin interface {
	CreateEvent(ctx context.Context) (string, error)
	UpdateEvent(ctx context.Context, eventID string, request UpdateEventRequest) error
	DeleteEvent(ctx context.Context, eventID string) error
	AddMatch(ctx context.Context, eventID, title string, options []string) (*league.Match, error)
	SetMatchWinner(ctx context.Context, eventID string, matchID int, winner string) error
	UploadBanner(ctx context.Context, eventID, filename string, r io.Reader) (string, error)
	CreatePlayer(ctx context.Context, name string) (string, error)
	DeletePlayer(ctx context.Context, playerID string) error
	ResetSinglePick(ctx context.Context, eventID string, matchID int, playerName string) error
	ResetAllPicks(ctx context.Context, eventID, playerName string) error
	NotifyResults(ctx context.Context, eventID string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Admin

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/events", h.createEventHandler)
	r.POST("/events/:event_id", h.updateEventHandler)
	r.DELETE("/events/:event_id", h.deleteEventHandler)
	r.POST("/events/:event_id/matches", h.addMatchHandler)
	r.POST("/events/:event_id/matches/:match_id/winner", h.setWinnerHandler)
	r.POST("/events/:event_id/matches/:match_id/reset", h.resetSinglePickHandler)
	r.POST("/events/:event_id/reset", h.resetAllPicksHandler)
	r.POST("/events/:event_id/banner", h.uploadBannerHandler)
	r.POST("/events/:event_id/notify", h.notifyResultsHandler)
	r.POST("/players", h.createPlayerHandler)
	r.DELETE("/players/:player_id", h.deletePlayerHandler)
}

type httpHandler struct {
	HTTPOptions
}

type addMatchRequest struct {
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

type setWinnerRequest struct {
	Winner string `json:"winner"`
}

type resetRequest struct {
	Player string `json:"player"`

	// Resets are irreversible; the caller has to confirm explicitly.
	Confirm bool `json:"confirm"`
}

type createPlayerRequest struct {
	Name string `json:"name"`
}

func (h *httpHandler) createEventHandler(c *gin.Context) {
	eventID, err := h.Service.CreateEvent(c)
	if err != nil {
		log.Printf("Could not create event: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": eventID})
}

func (h *httpHandler) updateEventHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	var request UpdateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	err := h.Service.UpdateEvent(c, eventID, request)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		log.Printf("Could not update event: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": eventID})
}

func (h *httpHandler) deleteEventHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	if err := h.Service.DeleteEvent(c, eventID); err != nil {
		log.Printf("Could not delete event: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": eventID})
}

func (h *httpHandler) addMatchHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	var request addMatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	match, err := h.Service.AddMatch(c, eventID, request.Title, request.Options)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidMatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, league.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		default:
			log.Printf("Could not add match: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, gin.H{"match": match})
}

func (h *httpHandler) setWinnerHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "match id must be a number"})
		c.Abort()
		return
	}

	var request setWinnerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	err = h.Service.SetMatchWinner(c, eventID, matchID, request.Winner)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotResolvable) || errors.Is(err, ErrInvalidWinner):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, league.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event or match not found"})
		default:
			log.Printf("Could not set winner: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"winner": request.Winner})
}

func (h *httpHandler) resetSinglePickHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "match id must be a number"})
		c.Abort()
		return
	}

	request, ok := bindResetRequest(c)
	if !ok {
		return
	}

	if err := h.Service.ResetSinglePick(c, eventID, matchID, request.Player); err != nil {
		if errors.Is(err, league.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
			c.Abort()
			return
		}
		log.Printf("Could not reset pick: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pick reset"})
}

func (h *httpHandler) resetAllPicksHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	request, ok := bindResetRequest(c)
	if !ok {
		return
	}

	if err := h.Service.ResetAllPicks(c, eventID, request.Player); err != nil {
		if errors.Is(err, league.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
			c.Abort()
			return
		}
		log.Printf("Could not reset picks: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All picks reset"})
}

func bindResetRequest(c *gin.Context) (resetRequest, bool) {
	var request resetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return request, false
	}
	if request.Player == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player is required"})
		c.Abort()
		return request, false
	}
	if !request.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reset must be confirmed"})
		c.Abort()
		return request, false
	}
	return request, true
}

func (h *httpHandler) uploadBannerHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is missing"})
		c.Abort()
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Printf("Could not open uploaded file: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	defer f.Close()

	url, err := h.Service.UploadBanner(c, eventID, file.Filename, f)
	if err != nil {
		log.Printf("Could not upload banner: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"bannerImage": url})
}

func (h *httpHandler) notifyResultsHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	err := h.Service.NotifyResults(c, eventID)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, league.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		default:
			log.Printf("Could not send results mail: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Results mail sent"})
}

func (h *httpHandler) createPlayerHandler(c *gin.Context) {
	var request createPlayerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	playerID, err := h.Service.CreatePlayer(c, request.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlayerNameMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrPlayerExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("Could not create player: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": playerID})
}

func (h *httpHandler) deletePlayerHandler(c *gin.Context) {
	playerID := c.Param("player_id")

	if err := h.Service.DeletePlayer(c, playerID); err != nil {
		log.Printf("Could not delete player: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": playerID})
}
