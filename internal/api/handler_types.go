package api

import (
	"github.com/hazylake/aurelog/internal/db"
	"github.com/hazylake/aurelog/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	repos    *db.Repositories
	insights *services.InsightsService
	transfer *services.TransferService
}

func NewHandler(database *gorm.DB) *Handler {
	repos := db.NewRepositories(database)
	return &Handler{
		repos:    repos,
		insights: services.NewInsightsService(repos.Entries),
		transfer: services.NewTransferService(repos.Entries),
	}
}
