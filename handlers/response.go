package handlers

import (
	"encoding/json"

	"github.com/GeorgeBeta/rkt-regulador2-infra/models"
	"github.com/aws/aws-lambda-go/events"
)

const (
	allowedHeaders = "Content-Type,Authorization,X-Amz-Date,X-Api-Key,X-Amz-Security-Token"
	allowedMethods = "GET,POST,DELETE,PATCH,OPTIONS"
)

// corsPolicy decides the CORS response headers for a given request origin.
// A wildcard allow-list answers "*" without credentials; an explicit
// allow-list echoes the matching origin and allows credentials. Wildcard
// with credentials is an insecure combination and is never produced.
type corsPolicy struct {
	allowedOrigins []string
}

func (p corsPolicy) headers(requestOrigin string) map[string]string {
	h := map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Headers": allowedHeaders,
		"Access-Control-Allow-Methods": allowedMethods,
	}

	for _, origin := range p.allowedOrigins {
		if origin == "*" {
			h["Access-Control-Allow-Origin"] = "*"
			return h
		}
		if origin == requestOrigin {
			h["Access-Control-Allow-Origin"] = origin
			h["Access-Control-Allow-Credentials"] = "true"
			return h
		}
	}

	return h
}

// respond serializes payload into an API Gateway proxy response.
func respond(statusCode int, payload any, headers map[string]string) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		// Payloads are our own structs; failure here is a programming error.
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    headers,
			Body:       `{"error":"INTERNAL_ERROR","message":"internal server error"}`,
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(body),
	}
}

func respondError(statusCode int, code, message string, headers map[string]string) events.APIGatewayProxyResponse {
	return respond(statusCode, models.ErrorResponse{Error: code, Message: message}, headers)
}
