package dto

// SentimentProbs is the classifier collaborator contract: two independent
// class probabilities per text, not required to sum to one.
type SentimentProbs struct {
	PPos float64 `json:"p_pos"`
	PNeg float64 `json:"p_neg"`
}

// InferenceAPIRequest is the payload sent to the HTTP sentiment-inference
// endpoint.
type InferenceAPIRequest struct {
	Texts []string `json:"texts"`
}

// InferenceAPIResponse is the batched response of the HTTP sentiment-inference
// endpoint, one result per input text in order.
type InferenceAPIResponse struct {
	Results []SentimentProbs `json:"results"`
}
