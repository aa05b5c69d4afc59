package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/clubtrack/club-api/internal/api/handler/v1"
	"github.com/clubtrack/club-api/internal/domain"
)

type stubReportService struct {
	start time.Time
	end   time.Time
}

func (s *stubReportService) ActivityStates(_ context.Context) ([]domain.ActivityReport, error) {
	return nil, nil
}

func (s *stubReportService) MemberStates(_ context.Context, start, end time.Time) ([]domain.MemberReport, error) {
	s.start, s.end = start, end
	return nil, nil
}

func (s *stubReportService) MemberGuestStates(_ context.Context, start, end time.Time) ([]domain.MemberGuestsReport, error) {
	s.start, s.end = start, end
	return nil, nil
}

func (s *stubReportService) SPActivityStates(_ context.Context, _ string) ([]domain.SPActivityReport, error) {
	return nil, nil
}

func newReportRouter(svc v1.ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := v1.NewReportHandler(svc)
	router.GET("/reports/members", handler.HandleMemberReport)
	router.GET("/reports/members/guests", handler.HandleMemberGuestsReport)

	return router
}

func TestHandleMemberReport_DateRange(t *testing.T) {
	svc := &stubReportService{}
	router := newReportRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/reports/members?start_date=2026-01-10&end_date=2026-01-20", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), svc.start)
	// The end bound is exclusive downstream, so the requested end day is
	// widened to the following midnight to keep its whole day in range.
	assert.Equal(t, time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC), svc.end)
}

func TestHandleMemberReport_BadRange(t *testing.T) {
	router := newReportRouter(&stubReportService{})

	for _, path := range []string{
		"/reports/members?start_date=10/01/2026",
		"/reports/members?end_date=not-a-date",
		"/reports/members?start_date=2026-02-01&end_date=2026-01-01",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusBadRequest, resp.Code, "path: %v", path)
	}
}

func TestHandleMemberGuestsReport_DefaultRange(t *testing.T) {
	svc := &stubReportService{}
	router := newReportRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/reports/members/guests", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	now := time.Now()
	assert.Equal(t, time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), svc.start)
	assert.WithinDuration(t, now, svc.end, time.Minute)
}
