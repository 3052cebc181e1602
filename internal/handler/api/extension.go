package api

import (
	"errors"
	"net/http"

	reqdto "bookswap-engine/internal/handler/dto/request"
	resdto "bookswap-engine/internal/handler/dto/response"
	"bookswap-engine/internal/handler/httperr"
	"bookswap-engine/internal/handler/middleware"
	"bookswap-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExtensionHandler struct {
	extensionCommands commands.ExtensionCommands
}

func NewExtensionHandler(extensionCommands commands.ExtensionCommands) *ExtensionHandler {
	return &ExtensionHandler{extensionCommands: extensionCommands}
}

func (h *ExtensionHandler) Request(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	swapID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid swap id", nil)
		return
	}

	var req reqdto.RequestExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sn, err := h.extensionCommands.Request(c.Request.Context(), userID, swapID, req.Days, req.Reason)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromExtensionSnapshot(sn))
}

func (h *ExtensionHandler) Respond(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	extensionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid extension id", nil)
		return
	}

	var req reqdto.ResolveExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sn, err := h.extensionCommands.Respond(c.Request.Context(), userID, extensionID, req.Decision, req.AdminNotes)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExtensionSnapshot(sn))
}
