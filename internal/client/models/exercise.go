package models

import "encoding/json"

// Exercise is one catalog entry. Series and Repetitions are kept as
// json.Number because the backend is not consistent about quoting them.
type Exercise struct {
	ID          ID          `json:"id"`
	Name        string      `json:"name"`
	Series      json.Number `json:"series"`
	Repetitions json.Number `json:"repetitions"`
	Group       string      `json:"group"`
	Demo        string      `json:"demo"`
	Thumb       string      `json:"thumb"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
}

// HistoryRecord is one completed exercise.
type HistoryRecord struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Group     string `json:"group"`
	Hour      string `json:"hour"`
	CreatedAt string `json:"created_at"`
}

// HistoryByDay groups history records under a day label.
type HistoryByDay struct {
	Title string          `json:"title"`
	Data  []HistoryRecord `json:"data"`
}

// HistoryEntry is the body of POST /history.
type HistoryEntry struct {
	ExerciseID ID `json:"exercise_id"`
}
