package models

// DeleteAck acknowledges a successful post deletion. The deleted post is not
// echoed back; the deletion endpoint is the only one that does not return the
// affected post.
type DeleteAck struct {
	Success bool `json:"success"`
}
