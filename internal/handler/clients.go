package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paverbrasil/paveradmin/internal/store"
)

type ClientServicer interface {
	CreateClient(ctx context.Context, name, email, phone, status string) (*store.Client, error)
	GetClientByID(ctx context.Context, id int64) (*store.Client, error)
	ListClients(ctx context.Context) []*store.Client
	UpdateClient(ctx context.Context, id int64, update store.ClientUpdate) error
	DeleteClient(ctx context.Context, id int64) error
}

func SetupClientRoutes(g *echo.Group, clientService ClientServicer) {
	h := NewClientHandler(clientService)
	cg := g.Group("/api/clients", RequireUser)
	cg.GET("", h.GetClients)
	cg.GET("/:client_id", h.GetClient)
	cg.POST("", h.PostClient)
	cg.PATCH("/:client_id", h.PatchClient)
	cg.DELETE("/:client_id", h.DeleteClient)
}

type ClientHandler struct {
	clientService ClientServicer
}

func NewClientHandler(clientService ClientServicer) *ClientHandler {
	return &ClientHandler{clientService}
}

func (h *ClientHandler) GetClients(c echo.Context) error {
	return c.JSON(http.StatusOK, h.clientService.ListClients(c.Request().Context()))
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	cp := new(ClientParams)
	if err := c.Bind(cp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid client data")
	}
	client, err := h.clientService.GetClientByID(c.Request().Context(), cp.ClientID)
	if err != nil {
		return newError(c, err, http.StatusNotFound, "client not found")
	}
	return c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) PostClient(c echo.Context) error {
	cp := new(ClientParams)
	if err := c.Bind(cp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid client data")
	}
	if cp.Name == nil || *cp.Name == "" {
		return newError(c, nil, http.StatusBadRequest, "name is required")
	}
	status := "active"
	if cp.Status != nil {
		status = *cp.Status
	}
	if !isOneOf(status, clientStatuses) {
		return newError(c, nil, http.StatusBadRequest, "invalid status")
	}

	client, err := h.clientService.CreateClient(
		c.Request().Context(),
		*cp.Name, strOrEmpty(cp.Email), strOrEmpty(cp.Phone), status,
	)
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to create client")
	}
	return c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) PatchClient(c echo.Context) error {
	cp := new(ClientParams)
	if err := c.Bind(cp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid client data")
	}
	if cp.Status != nil && !isOneOf(*cp.Status, clientStatuses) {
		return newError(c, nil, http.StatusBadRequest, "invalid status")
	}
	if cp.Name != nil && *cp.Name == "" {
		return newError(c, nil, http.StatusBadRequest, "name must not be empty")
	}

	if err := h.clientService.UpdateClient(c.Request().Context(), cp.ClientID, store.ClientUpdate{
		Name:   cp.Name,
		Email:  cp.Email,
		Phone:  cp.Phone,
		Status: cp.Status,
	}); err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to update client")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *ClientHandler) DeleteClient(c echo.Context) error {
	cp := new(ClientParams)
	if err := c.Bind(cp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid client data")
	}
	if err := h.clientService.DeleteClient(c.Request().Context(), cp.ClientID); err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to delete client")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
