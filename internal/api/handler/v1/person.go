package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubtrack/club-api/internal/api/handler/v1/request"
	"github.com/clubtrack/club-api/internal/api/handler/v1/response"
	"github.com/clubtrack/club-api/internal/domain"
	"github.com/clubtrack/club-api/internal/service"
)

const dateLayout = "2006-01-02"

type PersonService interface {
	CreateSponsorGroup(ctx context.Context, sp domain.SponsorGroup) (domain.SponsorGroup, error)
	ListSponsorGroups(ctx context.Context, region string) ([]domain.SponsorGroup, error)
	CreatePerson(ctx context.Context, person domain.Person) (domain.Person, error)
	ListPersons(ctx context.Context, nonMembersOnly bool) ([]domain.Person, error)
	CreateMember(ctx context.Context, member domain.Member) (domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

type PersonHandler struct {
	svc PersonService
}

func NewPersonHandler(svc PersonService) *PersonHandler {
	return &PersonHandler{
		svc: svc,
	}
}

// HandleCreateSponsorGroup godoc
// @Summary      Create a sponsor group
// @Description  Registers a regional sponsor group persons belong to
// @Tags         sponsor-groups
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateSponsorGroupRequest  true  "Sponsor group details"
// @Success      201    {object}  domain.SponsorGroup
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /sponsor-groups [post]
func (h *PersonHandler) HandleCreateSponsorGroup(ctx *gin.Context) {
	var input request.CreateSponsorGroupRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateSponsorGroup(ctx.Request.Context(), domain.SponsorGroup{
		Region:      input.Region,
		Description: input.Description,
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateSponsorGroup -> h.svc.CreateSponsorGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListSponsorGroups godoc
// @Summary      List sponsor groups
// @Description  Lists all sponsor groups, optionally filtered by region
// @Tags         sponsor-groups
// @Produce      json
// @Param        region  query     string  false  "Region filter"
// @Success      200     {array}   domain.SponsorGroup
// @Failure      500     {object}  response.Err
// @Router       /sponsor-groups [get]
func (h *PersonHandler) HandleListSponsorGroups(ctx *gin.Context) {
	groups, err := h.svc.ListSponsorGroups(ctx.Request.Context(), ctx.Query("region"))
	if err != nil {
		err = fmt.Errorf("HandleListSponsorGroups -> h.svc.ListSponsorGroups -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, groups)
}

// HandleCreatePerson godoc
// @Summary      Create a person
// @Description  Registers a natural person under an existing sponsor group
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreatePersonRequest  true  "Person details"
// @Success      201    {object}  domain.Person
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /persons [post]
func (h *PersonHandler) HandleCreatePerson(ctx *gin.Context) {
	var input request.CreatePersonRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	birthDate, err := time.Parse(dateLayout, input.BirthDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid birth_date: %v", err)))
		return
	}

	created, err := h.svc.CreatePerson(ctx.Request.Context(), domain.Person{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		BirthDate:      birthDate,
		SponsorGroupID: input.SponsorGroupID,
	})
	if err != nil {
		if errors.Is(err, service.ErrSponsorGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sponsor group", "ID", input.SponsorGroupID))
			return
		}

		err = fmt.Errorf("HandleCreatePerson -> h.svc.CreatePerson -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListPersons godoc
// @Summary      List persons
// @Description  Lists all persons; with non_members=true only those without a membership
// @Tags         persons
// @Produce      json
// @Param        non_members  query     bool    false  "Only persons without a membership"
// @Success      200          {array}   domain.Person
// @Failure      500          {object}  response.Err
// @Router       /persons [get]
func (h *PersonHandler) HandleListPersons(ctx *gin.Context) {
	nonMembersOnly := ctx.Query("non_members") == "true"

	persons, err := h.svc.ListPersons(ctx.Request.Context(), nonMembersOnly)
	if err != nil {
		err = fmt.Errorf("HandleListPersons -> h.svc.ListPersons -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, persons)
}

// HandleCreateMember godoc
// @Summary      Affiliate a person as member
// @Description  Creates a membership for an existing person; a person holds at most one
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateMemberRequest  true  "Member details"
// @Success      201    {object}  domain.Member
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /members [post]
func (h *PersonHandler) HandleCreateMember(ctx *gin.Context) {
	var input request.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	affiliationDate := time.Now()
	if input.AffiliationDate != "" {
		parsed, err := time.Parse(dateLayout, input.AffiliationDate)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid affiliation_date: %v", err)))
			return
		}
		affiliationDate = parsed
	}

	created, err := h.svc.CreateMember(ctx.Request.Context(), domain.Member{
		PersonID:        input.PersonID,
		AffiliationDate: affiliationDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPersonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("person", "ID", input.PersonID))
		case errors.Is(err, service.ErrPersonAlreadyMember):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleCreateMember -> h.svc.CreateMember -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListMembers godoc
// @Summary      List members
// @Description  Lists all members with their person names
// @Tags         members
// @Produce      json
// @Success      200  {array}   domain.Member
// @Failure      500  {object}  response.Err
// @Router       /members [get]
func (h *PersonHandler) HandleListMembers(ctx *gin.Context) {
	members, err := h.svc.ListMembers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListMembers -> h.svc.ListMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, members)
}
