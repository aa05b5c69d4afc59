package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubtrack/club-api/internal/api/handler/v1/request"
	"github.com/clubtrack/club-api/internal/api/handler/v1/response"
	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/service"
)

type ActivityService interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, id uint) (domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
}

type ActivityHandler struct {
	svc ActivityService
}

func NewActivityHandler(svc ActivityService) *ActivityHandler {
	return &ActivityHandler{
		svc: svc,
	}
}

// HandleCreateActivity godoc
// @Summary      Create an activity
// @Description  Schedules a future activity priced within the club's price band
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateActivityRequest  true  "Activity details"
// @Success      201    {object}  domain.Activity
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /activities [post]
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	var input request.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date: %v", err)))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), domain.Activity{
		Description: input.Description,
		Date:        date,
		Region:      input.Region,
		Priority:    input.Priority,
		Price:       input.Price,
	})
	if err != nil {
		var bandErr *service.PriceOutOfBandError
		switch {
		case errors.Is(err, service.ErrActivityDateNotFuture):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.As(err, &bandErr):
			// The band is echoed so the client can correct the price.
			response.RenderErr(ctx, response.ErrBadRequest(bandErr))
		default:
			err = fmt.Errorf("HandleCreateActivity -> h.svc.Create -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetActivity godoc
// @Summary      Get an activity
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200         {object}  domain.Activity
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /activities/{activityID} [get]
func (h *ActivityHandler) HandleGetActivity(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %v", err)))
		return
	}

	activity, err := h.svc.GetByID(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetActivity -> h.svc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleListActivities godoc
// @Summary      List activities
// @Description  Lists all activities, most recent first
// @Tags         activities
// @Produce      json
// @Success      200  {array}   domain.Activity
// @Failure      500  {object}  response.Err
// @Router       /activities [get]
func (h *ActivityHandler) HandleListActivities(ctx *gin.Context) {
	activities, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListActivities -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}
