package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"bookswap-engine/internal/domain/swap"
	reqdto "bookswap-engine/internal/handler/dto/request"
	resdto "bookswap-engine/internal/handler/dto/response"
	"bookswap-engine/internal/handler/httperr"
	"bookswap-engine/internal/handler/middleware"
	"bookswap-engine/internal/usecase/commands"
	"bookswap-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

type SwapHandler struct {
	swapCommands         commands.SwapCommands
	verificationCommands commands.VerificationCommands
	swapQueries          queries.SwapQueries
}

func NewSwapHandler(
	swapCommands commands.SwapCommands,
	verificationCommands commands.VerificationCommands,
	swapQueries queries.SwapQueries,
) *SwapHandler {
	return &SwapHandler{
		swapCommands:         swapCommands,
		verificationCommands: verificationCommands,
		swapQueries:          swapQueries,
	}
}

func (h *SwapHandler) Propose(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	var req reqdto.ProposeSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sn, err := h.swapCommands.Propose(c.Request.Context(), userID, commands.ProposeSwapInput{
		InitiatorBookID: req.InitiatorBookID,
		ReceiverID:      req.ReceiverID,
		ReceiverBookID:  req.ReceiverBookID,
		Message:         req.GetMessage(),
	})
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSwapSnapshot(sn))
}

func (h *SwapHandler) Accept(c *gin.Context) {
	h.mutate(c, h.swapCommands.Accept)
}

func (h *SwapHandler) Cancel(c *gin.Context) {
	h.mutate(c, h.swapCommands.Cancel)
}

func (h *SwapHandler) Confirm(c *gin.Context) {
	userID, swapID, ok := h.identify(c)
	if !ok {
		return
	}

	var req reqdto.ConfirmSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sn, err := h.verificationCommands.Verify(c.Request.Context(), userID, swapID, req.Token)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSwapSnapshot(sn))
}

func (h *SwapHandler) Rate(c *gin.Context) {
	userID, swapID, ok := h.identify(c)
	if !ok {
		return
	}

	var req reqdto.RateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sn, err := h.swapCommands.Rate(c.Request.Context(), userID, swapID, req.Value)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSwapSnapshot(sn))
}

func (h *SwapHandler) GetByID(c *gin.Context) {
	userID, swapID, ok := h.identify(c)
	if !ok {
		return
	}

	view, err := h.swapQueries.GetByID(c.Request.Context(), userID, swapID)
	if err != nil {
		h.abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSwapView(view))
}

func (h *SwapHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	var q reqdto.ListSwapsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filters := queries.SwapFilters{
		Status:    q.Status,
		Direction: queries.SwapDirection(q.Direction),
	}
	items, next, err := h.swapQueries.List(c.Request.Context(), userID, filters, cursorOf(q.Cursor), q.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSwapList(items, next))
}

func (h *SwapHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	var q reqdto.ListSwapsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, next, err := h.swapQueries.History(c.Request.Context(), userID, cursorOf(q.Cursor), q.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSwapList(items, next))
}

// QR issues a fresh verification token and renders it as a PNG the
// counterpart can scan at the meetup.
func (h *SwapHandler) QR(c *gin.Context) {
	userID, swapID, ok := h.identify(c)
	if !ok {
		return
	}

	token, err := h.verificationCommands.IssueToken(c.Request.Context(), userID, swapID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	png, err := qrcode.Encode(token.Token, qrcode.Medium, qrImageSize)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Could not render QR code", nil)
		return
	}

	c.Header("Content-Length", strconv.Itoa(len(png)))
	c.Data(http.StatusOK, "image/png", png)
}

func (h *SwapHandler) Token(c *gin.Context) {
	userID, swapID, ok := h.identify(c)
	if !ok {
		return
	}

	token, err := h.verificationCommands.IssueToken(c.Request.Context(), userID, swapID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTokenView(token))
}

func (h *SwapHandler) mutate(c *gin.Context, cmd func(ctx context.Context, actorID, swapID uuid.UUID) (swap.Snapshot, error)) {
	userID, swapID, ok := h.identify(c)
	if !ok {
		return
	}

	sn, err := cmd(c.Request.Context(), userID, swapID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSwapSnapshot(sn))
}

// identify pulls the authenticated user and the :id path parameter. It has
// already written the response when ok is false.
func (h *SwapHandler) identify(c *gin.Context) (userID, swapID uuid.UUID, ok bool) {
	userID, found := middleware.GetUserID(c)
	if !found {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return uuid.Nil, uuid.Nil, false
	}

	swapID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid swap id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, swapID, true
}

func (h *SwapHandler) abortQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrSwapNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Swap not found", nil)
	case errors.Is(err, queries.ErrNotViewer):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not a party to this swap", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func cursorOf(after string) *queries.Cursor {
	if after == "" {
		return nil
	}
	return &queries.Cursor{After: after}
}
