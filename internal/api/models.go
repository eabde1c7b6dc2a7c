package api

// CreatedResponse is the body of a successful create.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
