package rpc

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// PutReviewRequest upserts the caller's review. The caller is taken from the
// access token, never from the message.
type PutReviewRequest struct {
	ISBN   string `json:"isbn"`
	Review string `json:"review"`
}

type DeleteReviewRequest struct {
	ISBN string `json:"isbn"`
}

type GetReviewsRequest struct {
	ISBN string `json:"isbn"`
}

type ReviewsResponse struct {
	Message string            `json:"message,omitempty"`
	Reviews map[string]string `json:"reviews"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
