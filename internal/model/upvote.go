package model

const (
	UpvoteTargetRecord  = "record"
	UpvoteTargetPost    = "post"
	UpvoteTargetComment = "comment"
)

// upvoteTables maps target types to the table carrying their upvotes counter
var upvoteTables = map[string]string{
	UpvoteTargetRecord:  "records",
	UpvoteTargetPost:    "posts",
	UpvoteTargetComment: "comments",
}

type Upvote struct {
	ID         string `db:"id" json:"id"`
	AgentID    string `db:"agent_id" json:"agent_id"`
	TargetType string `db:"target_type" json:"target_type"`
	TargetID   string `db:"target_id" json:"target_id"`
	CreatedAt  int64  `db:"created_at" json:"created_at"`
}

// UpvoteTable returns the table name for a target type.
func UpvoteTable(targetType string) (string, bool) {
	table, ok := upvoteTables[targetType]
	return table, ok
}
