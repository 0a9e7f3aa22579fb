package sync

import (
	"net/http"

	"github.com/gin-gonic/gin"

	league "github.com/wrestlepicks/league-sync/repos/league"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Snapshots is the interface for the cached collection reads.
type Snapshots interface {
	Events() []league.Event
	Players() []league.Player
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Snapshots

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/events", h.eventsHandler)
	r.GET("/players", h.playersHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) eventsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": h.Service.Events()})
}

func (h *httpHandler) playersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"players": h.Service.Players()})
}
