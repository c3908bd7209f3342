package handlers

import (
	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/internal/api/presenters"
	"Menu-Planner-Backend/pkg/shopping"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		ToggleItem(c *fiber.Ctx) error
		AddExtra(c *fiber.Ctx) error
		ToggleExtra(c *fiber.Ctx) error
		RemoveExtra(c *fiber.Ctx) error
		SuggestExtras(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	weekStart := c.Query("week_start", "")
	includeNextWeek := c.QueryBool("include_next_week", false)

	res, err := h.shoppingService.GetShoppingList(c.Context(), weekStart, includeNextWeek)
	if err != nil {
		return presenters.ErrorResponse(c, shoppingStatus(err), domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) ToggleItem(c *fiber.Ctx) error {
	req := new(domain.ToggleItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleItem, err)
	}

	if err := h.shoppingService.ToggleItem(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, shoppingStatus(err), domain.MessageFailedToggleItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessToggleItem)
}

func (h *shoppingHandler) AddExtra(c *fiber.Ctx) error {
	req := new(domain.AddExtraRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddExtra, err)
	}

	res, err := h.shoppingService.AddExtra(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, shoppingStatus(err), domain.MessageFailedAddExtra, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddExtra)
}

func (h *shoppingHandler) ToggleExtra(c *fiber.Ctx) error {
	req := new(domain.ToggleExtraRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleExtra, err)
	}

	if err := h.shoppingService.ToggleExtra(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, shoppingStatus(err), domain.MessageFailedToggleExtra, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessToggleExtra)
}

func (h *shoppingHandler) RemoveExtra(c *fiber.Ctx) error {
	extraItemID := c.Params("id")
	weekStart := c.Query("week_start", "")

	if err := h.shoppingService.RemoveExtra(c.Context(), weekStart, extraItemID); err != nil {
		return presenters.ErrorResponse(c, shoppingStatus(err), domain.MessageFailedRemoveExtra, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveExtra)
}

func (h *shoppingHandler) SuggestExtras(c *fiber.Ctx) error {
	term := c.Query("term", "")
	limit, err := strconv.Atoi(c.Query("limit", "0"))
	if err != nil {
		limit = 0
	}

	res, err := h.shoppingService.SuggestExtras(c.Context(), term, limit)
	if err != nil {
		return presenters.ErrorResponse(c, shoppingStatus(err), domain.MessageFailedSuggestExtras, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSuggestExtras)
}

func shoppingStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrExtraNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrParseWeekStart),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrEmptyExtraName),
		errors.Is(err, domain.ErrNoWeeksSelected):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
