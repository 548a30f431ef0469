package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	bookingRepo "github.com/voueil/Herafona-website/database/repository/booking"
	"github.com/voueil/Herafona-website/i18n"
	"github.com/voueil/Herafona-website/middleware"
	"github.com/voueil/Herafona-website/models"
	"github.com/voueil/Herafona-website/services/booking"
	"github.com/voueil/Herafona-website/services/catalog"
	"github.com/voueil/Herafona-website/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the reservations and checkout endpoints.
type BookingHandler struct {
	Bookings booking.Service
	Catalog  catalog.Service
}

// NewBookingHandler wires the booking endpoints.
func NewBookingHandler(bookings booking.Service, cat catalog.Service) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Catalog: cat}
}

type checkoutRequest struct {
	ExperienceID string `json:"experienceId" binding:"required"`
	booking.CheckoutInput
}

// CreateBookingHandler runs checkout: resolves the experience, validates the
// form and writes a pending booking. Booking is offered to tourist/user
// accounts only.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	t := tr(c)

	requester, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": t(i18n.KeyPleaseLoginToBook, "please sign in to book")})
		return
	}
	if !requester.AccountType.CanBook() {
		c.JSON(http.StatusForbidden, gin.H{"error": t(i18n.KeyBookingTouristOnly, "booking is for tourist accounts only")})
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	exp, err := h.Catalog.GetByID(c.Request.Context(), req.ExperienceID)
	if err != nil {
		getLogger(c).Error("failed to resolve experience", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": t(i18n.KeyBookingCreateFailed, "booking failed")})
		return
	}
	if exp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": t(i18n.KeyBookingCreateFailed, "booking failed")})
		return
	}

	b, err := h.Bookings.CreateBooking(c.Request.Context(), requester, *exp, req.CheckoutInput)
	if err != nil {
		var vErr *booking.ValidationError
		switch {
		case errors.As(err, &vErr):
			msg := t(vErr.Key, vErr.Error())
			if vErr.Max > 0 {
				msg = fmt.Sprintf(msg, vErr.Max)
			}
			c.JSON(http.StatusBadRequest, gin.H{"field": vErr.Field, "error": msg})
		case errors.Is(err, booking.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": t(i18n.KeyBookingNotAuthorized, "not authorized to complete booking")})
		default:
			getLogger(c).Error("failed to create booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": t(i18n.KeyBookingCreateFailed, "booking failed")})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": t(i18n.KeyBookingSuccess, "booking created"),
		"booking": b,
	})
}

// ListBookingsHandler returns the caller's role-scoped bookings. Read
// failures fall back to an empty collection plus a localized notice.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	t := tr(c)

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.Bookings.ListFor(c.Request.Context(), user)
	if err != nil {
		getLogger(c).Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"bookings": []models.Booking{},
			"notice":   t(i18n.KeyBookingsReadFailed, "could not load bookings"),
		})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

var resolutionNames = map[bookingRepo.Resolution]string{
	bookingRepo.FoundPrimary: "primary",
	bookingRepo.FoundLegacy:  "legacy",
	bookingRepo.NotFound:     "not-found",
}

// UpdateBookingStatusHandler sets a booking's status. Only the provider who
// owns the booking can change it; anyone else's attempt resolves not-found.
// The outcome is reported as a notice either way: a miss or a backend failure
// yields the localized failure message rather than an error payload.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	t := tr(c)

	provider, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	status := models.BookingStatus(req.Status)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": t(i18n.KeyStatusInvalid, "invalid status")})
		return
	}

	resolution, err := h.Bookings.UpdateStatus(c.Request.Context(), provider, c.Param("id"), status)
	if err != nil || resolution == bookingRepo.NotFound {
		if err != nil {
			getLogger(c).Error("failed to update booking status", zap.Error(err))
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":         false,
			"message":    t(i18n.KeyStatusUpdateFailed, "failed to update status"),
			"resolution": resolutionNames[bookingRepo.NotFound],
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"message":    t(i18n.KeyStatusUpdated, "status updated"),
		"resolution": resolutionNames[resolution],
	})
}

// StreamBookingsHandler pushes full role-scoped booking snapshots over SSE.
// The subscription is bound to the identity and role at connect time; clients
// reconnect when either changes, and each event replaces the collection.
func (h *BookingHandler) StreamBookingsHandler(c *gin.Context) {
	t := tr(c)

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snapshots, err := h.Bookings.Subscribe(c.Request.Context(), user)
	if err != nil {
		getLogger(c).Error("failed to open booking stream", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": t(i18n.KeyBookingsReadFailed, "could not load bookings")})
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
				"message":  t(i18n.KeyBookingsReadFailed, "could not load bookings"),
				"bookings": []models.Booking{},
			})
			return true
		}
		if snap.Bookings == nil {
			snap.Bookings = []models.Booking{}
		}
		c.SSEvent("snapshot", snap.Bookings)
		return true
	})
}
