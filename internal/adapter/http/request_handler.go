package http

import (
	"bytes"
	"net/http"

	"tokenvest-backend/internal/domain/liquidity"
	"tokenvest-backend/internal/usecase/report"
	"tokenvest-backend/internal/usecase/request"

	"github.com/labstack/echo/v4"
)

type RequestHandler struct{ uc *request.Usecase }

func NewRequestHandler(uc *request.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type createRequestReq struct {
	InvestorID    string  `json:"investor_id"     validate:"required,hex32"`
	InvestorName  string  `json:"investor_name"`
	InvestorEmail string  `json:"investor_email"  validate:"omitempty,email"`
	PropertyID    string  `json:"property_id"     validate:"required,hex32"`
	PropertyName  string  `json:"property_name"`
	Tokens        int64   `json:"tokens"          validate:"required,gt=0"`
	PricePerToken float64 `json:"price_per_token" validate:"required,gt=0,dec2"`
	HoldingMonths int     `json:"holding_months"  validate:"gte=0"`
}

func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), request.CreateInput{
		InvestorID:    req.InvestorID,
		InvestorName:  req.InvestorName,
		InvestorEmail: req.InvestorEmail,
		PropertyID:    req.PropertyID,
		PropertyName:  req.PropertyName,
		Tokens:        req.Tokens,
		PricePerToken: req.PricePerToken,
		HoldingMonths: req.HoldingMonths,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RequestHandler) GetRequest(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RequestHandler) ListRequests(c echo.Context) error {
	filter := c.QueryParam("status")
	if filter == "" {
		filter = liquidity.StatusFilterAll
	}
	dtos, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"requests": dtos, "count": len(dtos)})
}

// ExportRequests streams the filtered listing as CSV.
func (h *RequestHandler) ExportRequests(c echo.Context) error {
	filter := c.QueryParam("status")
	if filter == "" {
		filter = liquidity.StatusFilterAll
	}
	dtos, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return writeDomainErr(c, err)
	}
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, dtos); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "export failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="liquidity_requests.csv"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *RequestHandler) CancelRequest(c echo.Context) error {
	dto, err := h.uc.Cancel(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
