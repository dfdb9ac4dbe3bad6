package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sant0-9/reformulator/internal/config"
	"github.com/sant0-9/reformulator/internal/history"
	"github.com/sant0-9/reformulator/internal/llm"
	"github.com/sant0-9/reformulator/internal/reformulate"
)

type reformulateRequest struct {
	Text   string `json:"text"`
	Tone   string `json:"tone"`
	Format string `json:"format"`
	Length string `json:"length"`
	Model  string `json:"model,omitempty"`
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
	Model          string `json:"model,omitempty"`
}

type resultResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type modelsResponse struct {
	Models []llm.ModelDescriptor `json:"models"`
}

type historyResponse struct {
	Entries []history.Entry `json:"entries"`
}

func (s *Server) handleReformulate(c echo.Context) error {
	var req reformulateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	res, err := s.svc.Rewrite(c.Request().Context(), reformulate.Request{
		Text:   req.Text,
		Tone:   req.Tone,
		Format: req.Format,
		Length: req.Length,
		Model:  req.Model,
	})
	if err != nil {
		return c.JSON(statusFor(err), errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, resultResponse{Result: res.Text})
}

func (s *Server) handleTranslate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	res, err := s.svc.Translate(c.Request().Context(), req.Text, req.TargetLanguage, req.Model)
	if err != nil {
		return c.JSON(statusFor(err), errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, resultResponse{Result: res.Text})
}

func (s *Server) handleModels(c echo.Context) error {
	return c.JSON(http.StatusOK, modelsResponse{Models: s.svc.Models(c.Request().Context())})
}

func (s *Server) handleHistory(c echo.Context) error {
	limit := 0
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
		}
		limit = n
	}

	entries, err := s.svc.History(c.Request().Context(), limit)
	if err != nil {
		s.logger.Error("read history", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "cannot read history"})
	}

	return c.JSON(http.StatusOK, historyResponse{Entries: entries})
}

func (s *Server) handleHealth(c echo.Context) error {
	if err := s.svc.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded", "ollama": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, reformulate.ErrEmptyText), errors.Is(err, config.ErrUnknownTag):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
