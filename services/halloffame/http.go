package halloffame

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

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

// HallOfFame is the interface for the hall of fame service.
type HallOfFame interface {
	List() []league.HallOfFameEntry
	Latest() (*league.HallOfFameEntry, error)
	Create(ctx context.Context, title, description string) (string, error)
	Update(ctx context.Context, entryID string, request UpdateEntryRequest) error
	Delete(ctx context.Context, entryID string) error
	UploadImage(ctx context.Context, entryID, filename string, r io.Reader) (string, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service HallOfFame

	// The router for the public read routes.
	Router Router

	// The router for the admin-gated mutation routes.
	AdminRouter Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}

	opts.Router.GET("/entries", h.listHandler)
	opts.Router.GET("/latest", h.latestHandler)

	opts.AdminRouter.POST("/halloffame", h.createHandler)
	opts.AdminRouter.POST("/halloffame/:entry_id", h.updateHandler)
	opts.AdminRouter.DELETE("/halloffame/:entry_id", h.deleteHandler)
	opts.AdminRouter.POST("/halloffame/:entry_id/image", h.uploadImageHandler)
}

type httpHandler struct {
	HTTPOptions
}

type createEntryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *httpHandler) listHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": h.Service.List()})
}

func (h *httpHandler) latestHandler(c *gin.Context) {
	entry, err := h.Service.Latest()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (h *httpHandler) createHandler(c *gin.Context) {
	var request createEntryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	entryID, err := h.Service.Create(c, request.Title, request.Description)
	if err != nil {
		if errors.Is(err, ErrTitleMissing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		log.Printf("Could not create hall of fame entry: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": entryID})
}

func (h *httpHandler) updateHandler(c *gin.Context) {
	entryID := c.Param("entry_id")

	var request UpdateEntryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := h.Service.Update(c, entryID, request); err != nil {
		if errors.Is(err, ErrTitleMissing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		log.Printf("Could not update hall of fame entry: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": entryID})
}

func (h *httpHandler) deleteHandler(c *gin.Context) {
	entryID := c.Param("entry_id")

	if err := h.Service.Delete(c, entryID); err != nil {
		log.Printf("Could not delete hall of fame entry: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": entryID})
}

func (h *httpHandler) uploadImageHandler(c *gin.Context) {
	entryID := c.Param("entry_id")

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

	url, err := h.Service.UploadImage(c, entryID, file.Filename, f)
	if err != nil {
		log.Printf("Could not upload hall of fame image: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
