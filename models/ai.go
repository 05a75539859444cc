package models

// RecommendRequest carries free-text symptoms for specialty triage.
// UseModel opts into the hosted model; the rule-based matcher always backs
// it up.
type RecommendRequest struct {
	Symptoms string `json:"symptoms"`
	UseModel bool   `json:"use_model"`
}

// RecommendResponse reports the suggested specialty and which method
// produced it ("rule-based" or "model").
type RecommendResponse struct {
	Specialty string `json:"specialty"`
	Method    string `json:"method"`
	Message   string `json:"message"`
	Symptoms  string `json:"symptoms"`
}
