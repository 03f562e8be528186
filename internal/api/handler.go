package api

import (
	"mindwork/internal/repository"
	"mindwork/internal/service"
	"mindwork/internal/validator"
)

// Handler holds the dependencies every endpoint needs.
type Handler struct {
	repo       repository.Repository
	auth       *service.AuthService
	validation *service.ValidationService
	validator  *validator.Validator
}

func NewHandler(repo repository.Repository, auth *service.AuthService, validation *service.ValidationService, v *validator.Validator) *Handler {
	return &Handler{
		repo:       repo,
		auth:       auth,
		validation: validation,
		validator:  v,
	}
}
