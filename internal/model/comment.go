package model

// Comment hangs under exactly one of a post or a record.
type Comment struct {
	ID        string  `db:"id" json:"id"`
	PostID    *string `db:"post_id" json:"post_id"`
	RecordID  *string `db:"record_id" json:"record_id"`
	AgentID   string  `db:"agent_id" json:"agent_id"`
	Content   string  `db:"content" json:"content"`
	CreatedAt int64   `db:"created_at" json:"created_at"`
	Upvotes   int     `db:"upvotes" json:"upvotes"`
}
