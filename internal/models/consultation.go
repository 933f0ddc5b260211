package models

import "time"

// Consultation is one answered welfare consultation kept in the process-lifetime log.
type Consultation struct {
	ID        string    `json:"id"`
	Situation string    `json:"situation"`
	Content   string    `json:"content"`
	Model     string    `json:"model"` // model identifier that produced the answer
	CreatedAt time.Time `json:"created_at"`
}
