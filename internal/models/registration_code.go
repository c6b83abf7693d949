package models

// RegistrationCode is a single-use token binding a specific username to
// shelter-role activation. Once activated it can never be reused.
type RegistrationCode struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Code        string `json:"code" gorm:"uniqueIndex;size:100"`
	Username    string `json:"username" gorm:"uniqueIndex;size:150"`
	IsActivated bool   `json:"is_activated" gorm:"default:false"`
}
