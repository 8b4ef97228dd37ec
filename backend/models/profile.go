package models

// UserProfile holds the free-text profile, one row per user. Writes are
// full-row upserts: omitted fields are overwritten, not merged.
type UserProfile struct {
	UserID      uint   `gorm:"primaryKey" json:"user_id"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Skills      string `json:"skills"`
	Interests   string `json:"interests"`
	College     string `json:"college"`
	Image       string `json:"image"` // avatar filename under the upload dir, empty when unset
}
