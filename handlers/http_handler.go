// Package handlers routes API Gateway proxy events to FilePdf operations.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/GeorgeBeta/rkt-regulador2-infra/apperrors"
	"github.com/GeorgeBeta/rkt-regulador2-infra/config"
	"github.com/GeorgeBeta/rkt-regulador2-infra/logging"
	"github.com/GeorgeBeta/rkt-regulador2-infra/models"
	"github.com/GeorgeBeta/rkt-regulador2-infra/services"
	"github.com/aws/aws-lambda-go/events"
)

const filePdfsPath = "/filepdfs"

type HTTPHandler struct {
	filePdfService services.FilePdfService
	logger         logging.Logger
	cors           corsPolicy
	devPrincipal   string
}

func NewHTTPHandler(filePdfService services.FilePdfService, logger logging.Logger, cfg *config.Config) *HTTPHandler {
	return &HTTPHandler{
		filePdfService: filePdfService,
		logger:         logger,
		cors:           corsPolicy{allowedOrigins: cfg.CORSAllowedOrigins},
		devPrincipal:   cfg.DevPrincipal,
	}
}

// Handle is the Lambda entrypoint for every API request. Each (method, path)
// pair dispatches to exactly one operation; anything unmatched is a 404.
func (h *HTTPHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := h.cors.headers(requestOrigin(req))
	userID := h.principal(req)

	log := h.logger.With("method", req.HTTPMethod, "path", req.Path, "user_id", userID)
	log.Info("request received")

	switch {
	case req.HTTPMethod == http.MethodGet && req.Path == filePdfsPath:
		return h.listFilePdfs(ctx, userID, headers, log), nil

	case req.HTTPMethod == http.MethodPost && req.Path == filePdfsPath:
		return h.createFilePdf(ctx, userID, req.Body, headers, log), nil

	case req.HTTPMethod == http.MethodDelete &&
		strings.HasPrefix(req.Path, filePdfsPath+"/") &&
		req.PathParameters["id"] != "":
		return h.deleteFilePdf(ctx, req.PathParameters["id"], headers, log), nil

	case req.HTTPMethod == http.MethodPatch:
		// Reserved in the API surface, never implemented.
		return h.errorResponse(apperrors.ErrUnsupportedOperation, headers, log), nil

	default:
		return h.errorResponse(apperrors.ErrUnsupportedOperation, headers, log), nil
	}
}

func (h *HTTPHandler) listFilePdfs(ctx context.Context, userID string, headers map[string]string, log logging.Logger) events.APIGatewayProxyResponse {
	filePdfs, err := h.filePdfService.List(ctx, userID)
	if err != nil {
		return h.errorResponse(err, headers, log)
	}

	return respond(http.StatusOK, filePdfs, headers)
}

func (h *HTTPHandler) createFilePdf(ctx context.Context, userID, body string, headers map[string]string, log logging.Logger) events.APIGatewayProxyResponse {
	var createReq models.CreateFilePdfRequest
	if err := json.Unmarshal([]byte(body), &createReq); err != nil {
		log.Warn("unparseable request body", "error", err)
		return respondError(http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON", headers)
	}

	filePdf, err := h.filePdfService.Create(ctx, userID, createReq.FilePdfName)
	if err != nil {
		return h.errorResponse(err, headers, log)
	}

	log.Info("file pdf created", "file_pdf_id", filePdf.FilePdfID)
	return respond(http.StatusOK, filePdf, headers)
}

func (h *HTTPHandler) deleteFilePdf(ctx context.Context, filePdfID string, headers map[string]string, log logging.Logger) events.APIGatewayProxyResponse {
	key, err := h.filePdfService.Delete(ctx, filePdfID)
	if err != nil {
		return h.errorResponse(err, headers, log)
	}

	log.Info("file pdf deleted", "file_pdf_id", filePdfID)
	return respond(http.StatusOK, key, headers)
}

// errorResponse maps service errors onto HTTP statuses. Store failures are
// logged in full and returned as an opaque 500.
func (h *HTTPHandler) errorResponse(err error, headers map[string]string, log logging.Logger) events.APIGatewayProxyResponse {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return respondError(http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Error(), headers)

	case errors.Is(err, apperrors.ErrFilePdfNotFound):
		return respondError(http.StatusNotFound, "NOT_FOUND", "item not found", headers)

	case errors.Is(err, apperrors.ErrUnsupportedOperation):
		return respondError(http.StatusNotFound, "NOT_FOUND", "method not found", headers)

	default:
		log.Error("store operation failed", "error", err)
		return respondError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", headers)
	}
}

// principal extracts the authenticated caller from the Cognito authorizer
// claims. Deployments without an authorizer fall back to the configured dev
// placeholder; list and create stay scoped to that single principal.
func (h *HTTPHandler) principal(req events.APIGatewayProxyRequest) string {
	if claims, ok := req.RequestContext.Authorizer["claims"].(map[string]interface{}); ok {
		if username, ok := claims["cognito:username"].(string); ok && username != "" {
			return username
		}
		if sub, ok := claims["sub"].(string); ok && sub != "" {
			return sub
		}
	}
	return h.devPrincipal
}

func requestOrigin(req events.APIGatewayProxyRequest) string {
	if origin, ok := req.Headers["Origin"]; ok {
		return origin
	}
	return req.Headers["origin"]
}
