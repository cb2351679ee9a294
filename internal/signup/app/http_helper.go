package app

import (
	"net/http"

	"gosignup/internal/signup/app/dto"
)

func badRequest(err error) dto.HTTPResponse {
	return dto.HTTPResponse{StatusCode: http.StatusBadRequest, Body: err}
}

func serverError() dto.HTTPResponse {
	return dto.HTTPResponse{StatusCode: http.StatusInternalServerError, Body: dto.NewServerError()}
}

func ok(body any) dto.HTTPResponse {
	return dto.HTTPResponse{StatusCode: http.StatusOK, Body: body}
}
