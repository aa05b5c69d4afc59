package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubtrack/club-api/internal/api/handler/v1/request"
	"github.com/clubtrack/club-api/internal/api/handler/v1/response"
	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/service"
)

type PolicyService interface {
	Get(ctx context.Context) (domain.DiscountPolicy, error)
	Update(ctx context.Context, rate float64, threshold int) (domain.DiscountPolicy, error)
}

type PolicyHandler struct {
	svc PolicyService
}

func NewPolicyHandler(svc PolicyService) *PolicyHandler {
	return &PolicyHandler{
		svc: svc,
	}
}

// HandleGetPolicy godoc
// @Summary      Get the discount policy
// @Description  Returns the club-wide discount policy and price band
// @Tags         discount-policy
// @Produce      json
// @Success      200  {object}  domain.DiscountPolicy
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /discount-policy [get]
func (h *PolicyHandler) HandleGetPolicy(ctx *gin.Context) {
	policy, err := h.svc.Get(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrPolicyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("discount policy", "singleton", 1))
			return
		}

		err = fmt.Errorf("HandleGetPolicy -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, policy)
}

// HandleUpdatePolicy godoc
// @Summary      Update the discount policy
// @Description  Replaces the discount rate and guest threshold in one step; all balances and reports pick up the new policy on their next read
// @Tags         discount-policy
// @Accept       json
// @Produce      json
// @Param        input  body      request.UpdatePolicyRequest  true  "Policy knobs"
// @Success      200    {object}  domain.DiscountPolicy
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /discount-policy [put]
func (h *PolicyHandler) HandleUpdatePolicy(ctx *gin.Context) {
	var input request.UpdatePolicyRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), input.DiscountRate, input.GuestThreshold)
	if err != nil {
		err = fmt.Errorf("HandleUpdatePolicy -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
