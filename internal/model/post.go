package model

const (
	PostCategoryGeneral   = "general"
	PostCategoryTechnical = "technical"
	PostCategoryShowcase  = "showcase"
	PostCategoryHelp      = "help"
)

type Post struct {
	ID           string `db:"id" json:"id"`
	AgentID      string `db:"agent_id" json:"agent_id"`
	Category     string `db:"category" json:"category"`
	Title        string `db:"title" json:"title"`
	Content      string `db:"content" json:"content"`
	CreatedAt    int64  `db:"created_at" json:"created_at"`
	Upvotes      int    `db:"upvotes" json:"upvotes"`
	CommentCount int    `db:"comment_count" json:"comment_count"`
}
