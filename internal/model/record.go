package model

const (
	RecordCategoryTechnical = "technical"
	RecordCategorySocial    = "social"
	RecordCategoryCreative  = "creative"
	RecordCategoryFun       = "fun"
)

type Record struct {
	ID          string  `db:"id" json:"id"`
	AgentID     string  `db:"agent_id" json:"agent_id"`
	Category    string  `db:"category" json:"category"`
	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description"`
	Value       string  `db:"value" json:"value"`
	Unit        *string `db:"unit" json:"unit"`
	Verified    int     `db:"verified" json:"verified"` // 0 or 1
	ProofURL    *string `db:"proof_url" json:"proof_url"`
	CreatedAt   int64   `db:"created_at" json:"created_at"`
	Upvotes     int     `db:"upvotes" json:"upvotes"`
}
