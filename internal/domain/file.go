package domain

import "time"

// File is a single upload attempt and its validation outcome.
// Status and Reason are written once at creation and never change.
type File struct {
	ID         int64     `db:"id"          json:"id"`
	Name       string    `db:"name"        json:"name"`
	FileType   string    `db:"file_type"   json:"file_type"`
	Size       int64     `db:"size"        json:"size"`
	Status     Status    `db:"status"      json:"status"`
	Reason     string    `db:"reason"      json:"reason"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
}
