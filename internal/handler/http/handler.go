package http

import (
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/models"
)

type Handler struct {
	onCallback func(models.OAuthCallback)
	traceIDs   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(onCallback func(models.OAuthCallback), logger *logger.Logger) *Handler {
	return &Handler{
		onCallback: onCallback,
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     logger,
	}
}
