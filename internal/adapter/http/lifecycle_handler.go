package http

import (
	"net/http"

	"tokenvest-backend/internal/usecase/lifecycle"

	"github.com/labstack/echo/v4"
)

type LifecycleHandler struct{ uc *lifecycle.Usecase }

func NewLifecycleHandler(uc *lifecycle.Usecase) *LifecycleHandler {
	return &LifecycleHandler{uc: uc}
}

type denyReq struct {
	Reason string `json:"reason" validate:"required"`
}

type completeReq struct {
	PayoutReference string `json:"payout_reference" validate:"required"`
}

type bulkReq struct {
	RequestIDs []string `json:"request_ids" validate:"required,min=1,dive,hex32"`
}

type bulkDenyReq struct {
	RequestIDs []string `json:"request_ids" validate:"required,min=1,dive,hex32"`
	Reason     string   `json:"reason"      validate:"required"`
}

func (h *LifecycleHandler) Approve(c echo.Context) error {
	res, err := h.uc.Approve(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LifecycleHandler) Deny(c echo.Context) error {
	var req denyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	res, err := h.uc.Deny(c.Request().Context(), c.Param("request_id"), req.Reason)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LifecycleHandler) MarkProcessing(c echo.Context) error {
	res, err := h.uc.MarkProcessing(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LifecycleHandler) MarkCompleted(c echo.Context) error {
	var req completeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	res, err := h.uc.MarkCompleted(c.Request().Context(), c.Param("request_id"), req.PayoutReference)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LifecycleHandler) BulkApprove(c echo.Context) error {
	var req bulkReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res := h.uc.BulkApprove(c.Request().Context(), req.RequestIDs)
	return c.JSON(http.StatusOK, map[string]any{"summary": res.Summary(), "result": res})
}

func (h *LifecycleHandler) BulkDeny(c echo.Context) error {
	var req bulkDenyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.uc.BulkDeny(c.Request().Context(), req.RequestIDs, req.Reason)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"summary": res.Summary(), "result": res})
}
