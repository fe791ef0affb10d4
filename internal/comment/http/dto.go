package http

// CreateCommentRequest defines the payload for POST /items/:id/comment.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
