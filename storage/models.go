package storage

import "time"

// Submission triage statuses. Stored as plain text so values written by a newer
// deployment still round-trip through an older one unchanged.
const (
	StatusUnderReview = "under_review"
	StatusShortlisted = "shortlisted"
	StatusInvited     = "invited"
	StatusContacted   = "contacted"
	StatusRejected    = "rejected"
	StatusFlagged     = "flagged"
)

type SpeakerApplication struct {
	ID                    string    `json:"id"`
	FullName              string    `json:"fullName"`
	Email                 string    `json:"email"`
	MobilePhone           string    `json:"mobilePhone"`
	WechatID              string    `json:"wechatId"`
	PriorTedTalk          string    `json:"priorTedTalk"`
	Job                   string    `json:"job"`
	Remarks               string    `json:"remarks,omitempty"`
	IdeaPresentation      string    `json:"ideaPresentation"`
	CommonBelief          string    `json:"commonBelief"`
	CoreIdea              string    `json:"coreIdea"`
	PersonalInsight       string    `json:"personalInsight"`
	PotentialImpact       string    `json:"potentialImpact"`
	RehearsalAvailability string    `json:"rehearsalAvailability"`
	WebsiteURL            string    `json:"websiteUrl,omitempty"`
	AttachmentRef         string    `json:"attachmentRef,omitempty"`
	Status                string    `json:"status"`
	Rating                int       `json:"rating"`
	CreatedAt             time.Time `json:"createdAt"`
}

type SpeakerNomination struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Contact      string    `json:"contact"`
	PriorTedTalk string    `json:"priorTedTalk"`
	Remarks      string    `json:"remarks"`
	WebsiteURL   string    `json:"websiteUrl,omitempty"`
	Status       string    `json:"status"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
}
