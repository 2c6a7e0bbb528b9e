package models

// Formation represents a course/training program with a fixed duration
type Formation struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Duration    int    `json:"duration" db:"duration"` // duration in hours
}
