package types

// DetailResponse is the error body: a single user-facing message.
// No internal error detail ever crosses this boundary.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the confirmation body for the delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}
