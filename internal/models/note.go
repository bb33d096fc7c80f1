package models

import (
	"time"
)

// Note is the resource the fixture application serves under /api/notes
type Note struct {
	NoteID    string `gorm:"primaryKey;type:char(36)"`
	Title     string `gorm:"size:255;not null;index:idx_notes_title"`
	Body      string `gorm:"type:text"`
	Tags      JSON
	Version   uint64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session is a login created by POST /api/session
type Session struct {
	Token     string `gorm:"primaryKey;type:char(36)"`
	UserName  string `gorm:"size:255;not null"`
	CreatedAt time.Time
}

// TableName overrides the table name for Note
func (Note) TableName() string {
	return "notes"
}

// TableName overrides the table name for Session
func (Session) TableName() string {
	return "sessions"
}
