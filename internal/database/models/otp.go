package models

import "time"

// OTPCode is the single active one-time code of an email address. Issuing a new code
// overwrites the row, which invalidates the previous code.
type OTPCode struct {
	BaseModel
	Email     string     `json:"email" gorm:"uniqueIndex;not null;size:255"`
	CodeHash  string     `json:"-" gorm:"not null;size:100"`
	Purpose   OTPPurpose `json:"purpose" gorm:"type:varchar(20);not null"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	Consumed  bool       `json:"consumed" gorm:"not null;default:false"`
	Attempts  int        `json:"attempts" gorm:"not null;default:0"`
}

// TableName returns the table name for OTPCode
func (OTPCode) TableName() string {
	return "otp_codes"
}

// IsExpired reports whether the code lapsed at the given instant
func (o *OTPCode) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
