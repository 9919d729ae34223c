package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/ArowuTest/plate-spin-backend/internal/models"
	"github.com/ArowuTest/plate-spin-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

// ParticipantHandler handles participant-related HTTP requests
type ParticipantHandler struct {
	participantService services.ParticipantService
}

// NewParticipantHandler creates a new ParticipantHandler
func NewParticipantHandler(participantService services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
	}
}

// Register handles POST /api/register
func (h *ParticipantHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	participant, err := h.participantService.Register(c.Request.Context(), req.Plate)
	if err != nil {
		respondError(c, err, "failed to register user")
		return
	}

	c.JSON(http.StatusCreated, models.RegisterResponse{
		Message: "user registered successfully",
		User:    participant,
	})
}

// Share handles POST /api/share
func (h *ParticipantHandler) Share(c *gin.Context) {
	var req models.ShareRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	spins, err := h.participantService.GrantShareSpin(c.Request.Context(), req.Plate)
	if err != nil {
		respondError(c, err, "failed to process spin")
		return
	}

	c.JSON(http.StatusOK, models.ShareResponse{
		Message:        "spin added for sharing",
		SpinsAvailable: spins,
	})
}

// GetParticipant handles GET /api/user/:plate
func (h *ParticipantHandler) GetParticipant(c *gin.Context) {
	participant, err := h.participantService.GetParticipant(c.Request.Context(), c.Param("plate"))
	if err != nil {
		respondError(c, err, "failed to get user data")
		return
	}

	c.JSON(http.StatusOK, participant)
}

// Redeem handles POST /api/redeem
func (h *ParticipantHandler) Redeem(c *gin.Context) {
	var req models.RedeemRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	if err := h.participantService.RedeemPrize(c.Request.Context(), req.Plate, req.PrizeText); err != nil {
		respondError(c, err, "failed to redeem prize")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "prize redeemed successfully"})
}

// bindOptionalJSON binds the body like ShouldBindJSON but treats an empty
// body as an empty request, leaving the lookup to report a missing plate
func bindOptionalJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// respondError maps service errors to status codes. Unknown errors are store
// faults and echo the underlying message back to the caller.
func respondError(c *gin.Context, err error, faultMessage string) {
	switch {
	case errors.Is(err, services.ErrParticipantExists),
		errors.Is(err, services.ErrSpinsAvailable),
		errors.Is(err, services.ErrInvalidPlate):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrParticipantNotFound),
		errors.Is(err, services.ErrPrizeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": faultMessage, "error": err.Error()})
	}
}
