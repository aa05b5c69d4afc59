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

type PaymentService interface {
	AuthorizePayment(ctx context.Context, presenceID uint, amount float64) (domain.Payment, domain.DiscountInfo, error)
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleCreatePayment godoc
// @Summary      Record a payment
// @Description  Authorizes and appends a payment against one attendance's remaining balance
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreatePaymentRequest  true  "Payment details"
// @Success      201    {object}  response.Payment
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.PaymentRejected
// @Failure      500    {object}  response.Err
// @Router       /payments [post]
func (h *PaymentHandler) HandleCreatePayment(ctx *gin.Context) {
	var input request.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	payment, info, err := h.svc.AuthorizePayment(ctx.Request.Context(), input.PresenceID, input.Amount)
	if err != nil {
		var exceedsErr *service.ExceedsBalanceError
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrPresenceNotFound):
			response.RenderErr(ctx, response.ErrNotFound("presence", "ID", input.PresenceID))
		case errors.As(err, &exceedsErr):
			ctx.JSON(http.StatusConflict, response.NewPaymentRejected(exceedsErr.Remaining, exceedsErr.DiscountApplied))
		default:
			err = fmt.Errorf("HandleCreatePayment -> h.svc.AuthorizePayment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewPayment(payment, info))
}
