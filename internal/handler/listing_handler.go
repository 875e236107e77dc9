package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chart0729-create/hany1/internal/model"
	"github.com/chart0729-create/hany1/internal/repository"
)

// ListingHandler serves all listing CRUD routes against whichever
// ListingStore it was constructed with.
type ListingHandler struct {
	Store repository.ListingStore
}

func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/listings", h.List)
	rg.GET("/listings/:id", h.GetByID)
	rg.POST("/listings", h.Create)
	rg.PUT("/listings/:id", h.Update)
	rg.DELETE("/listings/:id", h.Delete)

	// Both routes flip the same flag; older clients still call the
	// PATCH form.
	rg.PATCH("/listings/:id/complete", h.ToggleContract)
	rg.POST("/listings/:id/contract", h.ToggleContract)

	rg.POST("/listings/sync", h.Sync)
}

// createListingRequest accepts both `images` and the legacy `imgs`
// alias some clients still send.
type createListingRequest struct {
	Title     string   `json:"title"`
	Price     string   `json:"price"`
	Location  string   `json:"location"`
	MapURL    string   `json:"mapUrl"`
	Desc      string   `json:"desc"`
	Tags      []string `json:"tags"`
	Images    []string `json:"images"`
	Imgs      []string `json:"imgs"`
	Completed bool     `json:"completed"`
}

// updateListingRequest uses pointers so an absent field is left alone
// rather than zeroed.
type updateListingRequest struct {
	Title     *string   `json:"title"`
	Price     *string   `json:"price"`
	Location  *string   `json:"location"`
	MapURL    *string   `json:"mapUrl"`
	Desc      *string   `json:"desc"`
	Tags      *[]string `json:"tags"`
	Images    *[]string `json:"images"`
	Completed *bool     `json:"completed"`
}

// syncListingItem mirrors every field the list endpoint serializes, so
// a client can post that output straight back.
type syncListingItem struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Price       string   `json:"price"`
	Location    string   `json:"location"`
	MapURL      string   `json:"mapUrl"`
	Desc        string   `json:"desc"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	Imgs        []string `json:"imgs"`
	Completed   bool     `json:"completed"`
	PhotoFileID string   `json:"photoFileId"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type syncRequest struct {
	Listings []syncListingItem `json:"listings"`
}

// GET /api/listings
func (h *ListingHandler) List(c *gin.Context) {
	list, err := h.Store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if list == nil {
		list = []model.Listing{}
	}
	respondOK(c, http.StatusOK, gin.H{"listings": list})
}

// GET /api/listings/:id
func (h *ListingHandler) GetByID(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	listing, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"listing": listing})
}

// POST /api/listings
func (h *ListingHandler) Create(c *gin.Context) {
	var req createListingRequest
	if err := decodeJSON(c, &req); err != nil {
		respondError(c, http.StatusOK, msgInvalidPayload)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondError(c, http.StatusOK, msgTitleRequired)
		return
	}

	now := time.Now().Format(time.RFC3339)
	listing := model.Listing{
		Title:     req.Title,
		Price:     req.Price,
		Location:  req.Location,
		MapURL:    req.MapURL,
		Desc:      req.Desc,
		Tags:      req.Tags,
		Images:    coalesceImages(req.Images, req.Imgs),
		Completed: req.Completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Store.Create(c.Request.Context(), &listing); err != nil {
		respondStoreError(c, err)
		return
	}

	// Clients use the refreshed list to replace their local cache in
	// one round trip.
	list, err := h.Store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"listing": listing, "listings": list})
}

// PUT /api/listings/:id — strict update: an unknown id is an error, it
// never creates.
func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	var req updateListingRequest
	if err := decodeJSON(c, &req); err != nil {
		respondError(c, http.StatusOK, msgInvalidPayload)
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		respondError(c, http.StatusOK, msgTitleRequired)
		return
	}

	current, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.Price != nil {
		current.Price = *req.Price
	}
	if req.Location != nil {
		current.Location = *req.Location
	}
	if req.MapURL != nil {
		current.MapURL = *req.MapURL
	}
	if req.Desc != nil {
		current.Desc = *req.Desc
	}
	if req.Tags != nil {
		current.Tags = *req.Tags
	}
	if req.Images != nil {
		current.Images = *req.Images
	}
	if req.Completed != nil {
		current.Completed = *req.Completed
	}
	current.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := h.Store.Update(c.Request.Context(), current); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"listing": current})
}

// DELETE /api/listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"id": id})
}

// PATCH /api/listings/:id/complete, POST /api/listings/:id/contract
func (h *ListingHandler) ToggleContract(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	listing, err := h.Store.ToggleContract(c.Request.Context(), id, time.Now().Format(time.RFC3339))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"listing": listing})
}

// POST /api/listings/sync — wholesale replacement from a client-held
// cache.
func (h *ListingHandler) Sync(c *gin.Context) {
	var req syncRequest
	if err := decodeJSON(c, &req); err != nil {
		respondError(c, http.StatusOK, msgInvalidPayload)
		return
	}

	listings := make([]model.Listing, 0, len(req.Listings))
	for _, item := range req.Listings {
		l := model.Listing{
			ID:          item.ID,
			Title:       item.Title,
			Price:       item.Price,
			Location:    item.Location,
			MapURL:      item.MapURL,
			Desc:        item.Desc,
			Tags:        item.Tags,
			Images:      coalesceImages(item.Images, item.Imgs),
			Completed:   item.Completed,
			PhotoFileID: item.PhotoFileID,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		}
		l.Normalize()
		listings = append(listings, l)
	}

	if err := h.Store.ReplaceAll(c.Request.Context(), listings); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"count": len(listings)})
}

// listingID parses the :id segment. A malformed id can never match a
// stored record, so it reports not-found.
func listingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, msgListingNotFound)
		return 0, false
	}
	return id, true
}

func coalesceImages(images, imgs []string) []string {
	if len(images) > 0 {
		return images
	}
	return imgs
}
