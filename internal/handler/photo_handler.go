package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chart0729-create/hany1/internal/repository"
)

// PhotoHandler stores listing photos in GridFS. Its routes are only
// registered when a Mongo connection is configured.
type PhotoHandler struct {
	Repo  *repository.PhotoRepository
	Store repository.ListingStore
}

func (h *PhotoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/listings/:id/photo", h.Upload)
	rg.GET("/listings/:id/photo", h.Download)
}

// POST /api/listings/:id/photo
func (h *PhotoHandler) Upload(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	if _, err := h.Store.GetByID(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusOK, msgInvalidPayload)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	defer file.Close()

	photoID, err := h.Repo.Upload(file, fmt.Sprintf("listing_%d_%s", id, fileHeader.Filename))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if err := h.Store.SetPhotoFileID(c.Request.Context(), id, photoID); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"photoId": photoID})
}

// GET /api/listings/:id/photo
func (h *PhotoHandler) Download(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	listing, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if listing.PhotoFileID == "" {
		respondError(c, http.StatusNotFound, msgListingNotFound)
		return
	}

	data, err := h.Repo.Download(listing.PhotoFileID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline")
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
