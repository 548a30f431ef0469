package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/voueil/Herafona-website/i18n"
	"github.com/voueil/Herafona-website/middleware"
	"github.com/voueil/Herafona-website/models"
	"github.com/voueil/Herafona-website/services/catalog"
	"github.com/voueil/Herafona-website/services/storage"
	"github.com/voueil/Herafona-website/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExperienceHandler serves the catalog page endpoints.
type ExperienceHandler struct {
	Catalog catalog.Service
}

// NewExperienceHandler wires the catalog endpoints.
func NewExperienceHandler(svc catalog.Service) *ExperienceHandler {
	return &ExperienceHandler{Catalog: svc}
}

// ListExperiencesHandler returns the catalog newest-first. Read failures fall
// back to an empty collection plus a localized notice; the page never blanks.
func (h *ExperienceHandler) ListExperiencesHandler(c *gin.Context) {
	t := tr(c)

	exps, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to list experiences", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"experiences": []models.Experience{},
			"notice":      t(i18n.KeyExperiencesRead, "could not load experiences"),
		})
		return
	}
	if exps == nil {
		exps = []models.Experience{}
	}
	c.JSON(http.StatusOK, gin.H{"experiences": exps})
}

// CreateExperienceHandler writes a new listing for the calling artisan.
func (h *ExperienceHandler) CreateExperienceHandler(c *gin.Context) {
	t := tr(c)

	owner, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input catalog.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	exp, err := h.Catalog.CreateExperience(c.Request.Context(), owner, input)
	if err != nil {
		var vErr *catalog.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"field": vErr.Field,
				"error": t(vErr.Key, vErr.Error()),
			})
		case errors.Is(err, storage.ErrUploadFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": t(i18n.KeyImageUploadFailed, "image upload failed")})
		default:
			getLogger(c).Error("failed to create experience", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": t(i18n.KeyExperienceSaveFailed, "could not save the experience")})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    t(i18n.KeyExperienceAdded, "experience added"),
		"experience": exp,
	})
}

// StreamExperiencesHandler pushes full catalog snapshots over SSE until the
// client disconnects. Every event replaces the previous collection.
func (h *ExperienceHandler) StreamExperiencesHandler(c *gin.Context) {
	t := tr(c)

	snapshots, err := h.Catalog.Subscribe(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to open catalog stream", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": t(i18n.KeyExperiencesRead, "could not load experiences")})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		snap, ok := <-snapshots
		if !ok {
			return false
		}
		if snap.Err != nil {
			c.SSEvent("notice", gin.H{
				"message":     t(i18n.KeyExperiencesRead, "could not load experiences"),
				"experiences": []models.Experience{},
			})
			return true
		}
		if snap.Experiences == nil {
			snap.Experiences = []models.Experience{}
		}
		c.SSEvent("snapshot", snap.Experiences)
		return true
	})
}
