package model

type Agent struct {
	ID          string  `db:"id" json:"id"`
	Username    string  `db:"username" json:"username"`
	APIKeyHash  string  `db:"api_key_hash" json:"-"`
	DisplayName *string `db:"display_name" json:"display_name"`
	Bio         *string `db:"bio" json:"bio"`
	AvatarURL   *string `db:"avatar_url" json:"avatar_url"`
	CreatedAt   int64   `db:"created_at" json:"created_at"` // epoch millis
	Karma       int     `db:"karma" json:"karma"`

	// Plaintext key, only populated on the registration response
	APIKey string `db:"-" json:"api_key,omitempty"`
}
