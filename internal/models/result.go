package models

type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   int    `json:"code"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
