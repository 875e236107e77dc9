package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chart0729-create/hany1/internal/model"
	"github.com/chart0729-create/hany1/internal/repository"
)

// ContactHandler serves the singleton contact-info record.
type ContactHandler struct {
	Repo *repository.ContactRepository
}

func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/contact-info", h.Get)
	rg.POST("/contact-info", h.Set)
}

// GET /api/contact-info
func (h *ContactHandler) Get(c *gin.Context) {
	info, err := h.Repo.Get(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"contact": info})
}

// POST /api/contact-info — always a full overwrite, never a merge.
func (h *ContactHandler) Set(c *gin.Context) {
	var req model.ContactInfo
	if err := decodeJSON(c, &req); err != nil {
		respondError(c, http.StatusOK, msgInvalidPayload)
		return
	}
	info := req.Trimmed()
	if err := h.Repo.Set(c.Request.Context(), info); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"contact": info})
}
