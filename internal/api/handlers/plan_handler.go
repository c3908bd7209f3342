package handlers

import (
	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/internal/api/presenters"
	"Menu-Planner-Backend/pkg/planner"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PlanHandler interface {
		GenerateWeek(c *fiber.Ctx) error
		GetWeek(c *fiber.Ctx) error
		SaveWeek(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
	}

	planHandler struct {
		plannerService planner.PlannerService
		validator      *validator.Validate
	}
)

func NewPlanHandler(plannerService planner.PlannerService, validator *validator.Validate) PlanHandler {
	return &planHandler{
		plannerService: plannerService,
		validator:      validator,
	}
}

func (h *planHandler) GenerateWeek(c *fiber.Ctx) error {
	req := new(domain.GenerateWeekRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	res, err := h.plannerService.GenerateWeek(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, planStatus(err), domain.MessageFailedGenerateWeek, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateWeek)
}

func (h *planHandler) GetWeek(c *fiber.Ctx) error {
	res, err := h.plannerService.GetWeek(c.Context(), c.Params("weekStart"))
	if err != nil {
		return presenters.ErrorResponse(c, planStatus(err), domain.MessageFailedGetWeek, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeek)
}

func (h *planHandler) SaveWeek(c *fiber.Ctx) error {
	req := new(domain.SaveWeekRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveWeek, err)
	}

	res, err := h.plannerService.SaveWeek(c.Context(), c.Params("weekStart"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, planStatus(err), domain.MessageFailedSaveWeek, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveWeek)
}

func (h *planHandler) SearchRecipes(c *fiber.Ctx) error {
	term := c.Query("term", "")
	limit, err := strconv.Atoi(c.Query("limit", "0"))
	if err != nil {
		limit = 0
	}

	res, err := h.plannerService.SearchRecipes(c.Context(), c.Params("weekStart"), term, limit)
	if err != nil {
		return presenters.ErrorResponse(c, planStatus(err), domain.MessageFailedSearch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearch)
}

func planStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyRecipePool):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrParseWeekStart),
		errors.Is(err, domain.ErrDayCountMismatch),
		errors.Is(err, domain.ErrWeekBeyondHorizon),
		errors.Is(err, domain.ErrMissingRecipeID),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
