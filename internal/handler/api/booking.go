package api

import (
	"errors"
	"log/slog"
	"net/http"

	"tablebook/internal/domain/slot"
	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	slotQueries     queries.SlotQueries
	notifier        commands.Notifier
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	slotQueries queries.SlotQueries,
	notifier commands.Notifier,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		slotQueries:     slotQueries,
		notifier:        notifier,
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	requesterID, ok := middleware.GetRequesterID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.bookingCommands.RequestSlot(c.Request.Context(), commands.RequestSlotParams{
		VenueID:           req.VenueID,
		Date:              date,
		Time:              req.BookingTime,
		PartySize:         req.PartySize,
		SeatingPreference: req.SeatingOrDefault(),
		RequesterID:       requesterID,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPartySize):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Party size must be between 1 and 20",
			})
		case errors.Is(err, commands.ErrPastDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking date cannot be in the past",
			})
		case errors.Is(err, commands.ErrInvalidBookingTime):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking time must be formatted as HH:MM",
			})
		case errors.Is(err, commands.ErrInvalidSeating):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown seating preference",
			})
		case errors.Is(err, commands.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "This slot is already booked; please choose a different date or time",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.ConfirmBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Outcome must be approved or rejected",
		})
		return
	}

	result, err := h.bookingCommands.ConfirmSlot(c.Request.Context(), slotID, slot.Outcome(req.Outcome))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrInvalidOutcome):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Outcome must be approved or rejected",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// The notifier fires once per real transition; idempotent replays of
	// the same outcome never re-notify.
	if result.Transitioned {
		view := result.Slot
		if notifyErr := h.notifier.SlotDecided(c.Request.Context(), view.ID, view.RequesterID, slot.Status(view.Status)); notifyErr != nil {
			slog.Warn("failed to enqueue booking decision notification",
				"slot_id", view.ID, "error", notifyErr.Error())
		}
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(result.Slot))
}

func (h *BookingHandler) Get(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.slotQueries.GetByID(c.Request.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	requesterID, ok := middleware.GetRequesterID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.slotQueries.ListByRequester(c.Request.Context(), requesterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responseList := make([]*resdto.BookingResponse, len(views))
	for i, view := range views {
		responseList[i] = resdto.FromSlotView(view)
	}
	c.JSON(http.StatusOK, responseList)
}

// Reconcile runs the duplicate-slot maintenance sweep. Safe to invoke
// repeatedly; it is not part of the live booking path.
func (h *BookingHandler) Reconcile(c *gin.Context) {
	removed, err := h.bookingCommands.ReconcileDuplicates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ReconciliationResponse{Removed: removed})
}
