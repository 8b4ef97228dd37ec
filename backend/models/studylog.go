package models

// StudyLog is one logged study session. It deliberately avoids gorm.Model:
// deletes must be hard deletes so an undone entry can be re-inserted under
// its original id without tripping over a soft-deleted row.
type StudyLog struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `gorm:"index;not null" json:"user_id"`
	Date       string  `gorm:"not null" json:"date"` // calendar date, 2006-01-02
	Subject    string  `json:"subject"`
	Topic      string  `json:"topic"`
	Hours      float64 `gorm:"check:hours >= 0" json:"hours"`
	Difficulty int     `json:"difficulty"`
}

func (StudyLog) TableName() string {
	return "study_log"
}
