package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clubtrack/club-api/internal/api/handler/v1/request"
	"github.com/clubtrack/club-api/internal/api/handler/v1/response"
	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/service"
)

type PresenceService interface {
	Create(ctx context.Context, presence domain.Presence) (domain.Presence, error)
	List(ctx context.Context) ([]domain.PresenceListing, error)
}

type BalanceService interface {
	BalanceFor(ctx context.Context, presenceID uint) (domain.Balance, error)
}

type PresenceHandler struct {
	svc     PresenceService
	billing BalanceService
}

func NewPresenceHandler(svc PresenceService, billing BalanceService) *PresenceHandler {
	return &PresenceHandler{
		svc:     svc,
		billing: billing,
	}
}

// HandleCreatePresence godoc
// @Summary      Record an attendance
// @Description  Registers a member's own attendance, or a guest the member brings, to one activity
// @Tags         presences
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreatePresenceRequest  true  "Presence details"
// @Success      201    {object}  domain.Presence
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /presences [post]
func (h *PresenceHandler) HandleCreatePresence(ctx *gin.Context) {
	var input request.CreatePresenceRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	attendee := domain.Attendee{
		Kind:     domain.AttendeeMember,
		MemberID: input.MemberID,
	}
	if input.GuestPersonID != nil {
		attendee.Kind = domain.AttendeeGuest
		attendee.GuestPersonID = *input.GuestPersonID
	}

	created, err := h.svc.Create(ctx.Request.Context(), domain.Presence{
		ActivityID: input.ActivityID,
		Attendee:   attendee,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", input.ActivityID))
		case errors.Is(err, service.ErrMemberNotFound):
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", input.MemberID))
		case errors.Is(err, service.ErrPersonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("person", "ID", attendee.GuestPersonID))
		case errors.Is(err, service.ErrGuestIsMember):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrDuplicatePresence):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleCreatePresence -> h.svc.Create -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListPresences godoc
// @Summary      List attendances
// @Description  Lists all attendances with the billable person resolved to a name
// @Tags         presences
// @Produce      json
// @Success      200  {array}   domain.PresenceListing
// @Failure      500  {object}  response.Err
// @Router       /presences [get]
func (h *PresenceHandler) HandleListPresences(ctx *gin.Context) {
	listings, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListPresences -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, listings)
}

// HandleGetBalance godoc
// @Summary      Get the balance of one attendance
// @Description  Recomputes the discounted price, payments to date and remaining balance
// @Tags         presences
// @Produce      json
// @Param        presenceID  path      int  true  "Presence ID"
// @Success      200         {object}  response.Balance
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /presences/{presenceID}/balance [get]
func (h *PresenceHandler) HandleGetBalance(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("presenceID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid presence ID: %v", err)))
		return
	}

	balance, err := h.billing.BalanceFor(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrPresenceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("presence", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetBalance -> h.billing.BalanceFor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewBalance(balance))
}
