package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubtrack/club-api/internal/api/handler/v1/response"
	"github.com/clubtrack/club-api/internal/domain"
)

type ReportService interface {
	ActivityStates(ctx context.Context) ([]domain.ActivityReport, error)
	MemberStates(ctx context.Context, start, end time.Time) ([]domain.MemberReport, error)
	MemberGuestStates(ctx context.Context, start, end time.Time) ([]domain.MemberGuestsReport, error)
	SPActivityStates(ctx context.Context, region string) ([]domain.SPActivityReport, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// parseDateRange reads start_date/end_date query params. Absent bounds
// default to the start of the current year and now.
func parseDateRange(ctx *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := now

	if raw := ctx.Query("start_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date: %v", err)
		}
		start = parsed
	}

	if raw := ctx.Query("end_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date: %v", err)
		}
		// Make the end bound inclusive of its whole day.
		end = parsed.AddDate(0, 0, 1)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date is before start_date")
	}

	return start, end, nil
}

// HandleActivityReport godoc
// @Summary      Financial state per activity
// @Description  Head counts, expected revenue after discounts, payments collected and what remains, per activity
// @Tags         reports
// @Produce      json
// @Success      200  {array}   response.ActivityReport
// @Failure      500  {object}  response.Err
// @Router       /reports/activities [get]
func (h *ReportHandler) HandleActivityReport(ctx *gin.Context) {
	reports, err := h.svc.ActivityStates(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleActivityReport -> h.svc.ActivityStates -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewActivityReports(reports))
}

// HandleMemberReport godoc
// @Summary      Financial state per member
// @Description  Each member's own attendance bill over a date range, discounts applied
// @Tags         reports
// @Produce      json
// @Param        start_date  query     string  false  "Range start (YYYY-MM-DD), defaults to start of year"
// @Param        end_date    query     string  false  "Range end (YYYY-MM-DD), defaults to today"
// @Success      200         {array}   response.MemberReport
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /reports/members [get]
func (h *ReportHandler) HandleMemberReport(ctx *gin.Context) {
	start, end, err := parseDateRange(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reports, err := h.svc.MemberStates(ctx.Request.Context(), start, end)
	if err != nil {
		err = fmt.Errorf("HandleMemberReport -> h.svc.MemberStates -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMemberReports(reports))
}

// HandleMemberGuestsReport godoc
// @Summary      Financial state per member including their guests
// @Description  Extends the member report with the full-price bills of the guests each member brought
// @Tags         reports
// @Produce      json
// @Param        start_date  query     string  false  "Range start (YYYY-MM-DD), defaults to start of year"
// @Param        end_date    query     string  false  "Range end (YYYY-MM-DD), defaults to today"
// @Success      200         {array}   response.MemberGuestsReport
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /reports/members/guests [get]
func (h *ReportHandler) HandleMemberGuestsReport(ctx *gin.Context) {
	start, end, err := parseDateRange(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reports, err := h.svc.MemberGuestStates(ctx.Request.Context(), start, end)
	if err != nil {
		err = fmt.Errorf("HandleMemberGuestsReport -> h.svc.MemberGuestStates -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMemberGuestsReports(reports))
}

// HandleSponsorGroupReport godoc
// @Summary      Financial state per sponsor group and activity
// @Description  The sponsor-group by activity grid, optionally narrowed to one region; empty cells appear with zero expectations
// @Tags         reports
// @Produce      json
// @Param        region  query     string  false  "Region filter"
// @Success      200     {array}   response.SPActivityReport
// @Failure      500     {object}  response.Err
// @Router       /reports/sponsor-groups [get]
func (h *ReportHandler) HandleSponsorGroupReport(ctx *gin.Context) {
	reports, err := h.svc.SPActivityStates(ctx.Request.Context(), ctx.Query("region"))
	if err != nil {
		err = fmt.Errorf("HandleSponsorGroupReport -> h.svc.SPActivityStates -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSPActivityReports(reports))
}
