package models

import "github.com/Ahmed-Samir101/tedxbeixinqiao/storage"

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries one human-readable message per offending field.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateRatingRequest struct {
	// Pointer so a missing rating is distinguishable from a legitimate 0.
	Rating *int `json:"rating"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SubmissionDetailResponse struct {
	Type        string                      `json:"type"`
	Application *storage.SpeakerApplication `json:"application,omitempty"`
	Nomination  *storage.SpeakerNomination  `json:"nomination,omitempty"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
