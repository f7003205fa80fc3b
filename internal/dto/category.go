package dto

import "internal-tools-api/internal/models"

type CategoryListResponse struct {
	Data []models.Category `json:"data"`
}
