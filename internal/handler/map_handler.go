package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chart0729-create/hany1/internal/mapurl"
)

// MapHandler proxies shortened map links through the resolver.
type MapHandler struct {
	Resolver *mapurl.Resolver
}

func (h *MapHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resolve-map", h.Resolve)
}

// GET /api/resolve-map?url=...
func (h *MapHandler) Resolve(c *gin.Context) {
	raw := c.Query("url")
	if raw == "" {
		respondError(c, http.StatusBadRequest, msgURLRequired)
		return
	}

	resolved, err := h.Resolver.Resolve(c.Request.Context(), raw)
	if err != nil {
		// An unusable URL is a soft failure the client shows inline;
		// a transport fault is a server error.
		if errors.Is(err, mapurl.ErrNoFinalURL) {
			respondError(c, http.StatusOK, msgResolveFailed)
			return
		}
		log.Printf("[resolve-map] %s: %v", raw, err)
		respondError(c, http.StatusInternalServerError, msgServerError)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"resolved": resolved})
}
