package dto

// HealthResponse is returned by GET /api/health
type HealthResponse struct {
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	Database     string `json:"database"`
	ResponseTime int64  `json:"responseTime"`
}
