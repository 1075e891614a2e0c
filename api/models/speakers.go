package models

import (
	"time"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/storage"
)

type SpeakerApplicationRequest struct {
	FullName              string `json:"fullName"`
	Email                 string `json:"email"`
	MobilePhone           string `json:"mobilePhone"`
	WechatID              string `json:"wechatId"`
	PriorTedTalk          string `json:"priorTedTalk"`
	Job                   string `json:"job"`
	Remarks               string `json:"remarks"`
	IdeaPresentation      string `json:"ideaPresentation"`
	CommonBelief          string `json:"commonBelief"`
	CoreIdea              string `json:"coreIdea"`
	PersonalInsight       string `json:"personalInsight"`
	PotentialImpact       string `json:"potentialImpact"`
	RehearsalAvailability string `json:"rehearsalAvailability"`
	WebsiteURL            string `json:"websiteUrl"`
	// Attachment uploads live in external file storage; the form sends the
	// stored reference plus the byte size it measured before uploading.
	AttachmentRef  string `json:"attachmentRef"`
	AttachmentSize int64  `json:"attachmentSize"`
}

type SpeakerNominationRequest struct {
	FullName     string `json:"fullName"`
	Contact      string `json:"contact"`
	PriorTedTalk string `json:"priorTedTalk"`
	Remarks      string `json:"remarks"`
	WebsiteURL   string `json:"websiteUrl"`
}

func TransformApplicationRequestToStorage(req *SpeakerApplicationRequest, id string, createdAt time.Time) *storage.SpeakerApplication {
	return &storage.SpeakerApplication{
		ID:                    id,
		FullName:              req.FullName,
		Email:                 req.Email,
		MobilePhone:           req.MobilePhone,
		WechatID:              req.WechatID,
		PriorTedTalk:          req.PriorTedTalk,
		Job:                   req.Job,
		Remarks:               req.Remarks,
		IdeaPresentation:      req.IdeaPresentation,
		CommonBelief:          req.CommonBelief,
		CoreIdea:              req.CoreIdea,
		PersonalInsight:       req.PersonalInsight,
		PotentialImpact:       req.PotentialImpact,
		RehearsalAvailability: req.RehearsalAvailability,
		WebsiteURL:            req.WebsiteURL,
		AttachmentRef:         req.AttachmentRef,
		Status:                storage.StatusUnderReview,
		Rating:                0,
		CreatedAt:             createdAt,
	}
}

func TransformNominationRequestToStorage(req *SpeakerNominationRequest, id string, createdAt time.Time) *storage.SpeakerNomination {
	return &storage.SpeakerNomination{
		ID:           id,
		FullName:     req.FullName,
		Contact:      req.Contact,
		PriorTedTalk: req.PriorTedTalk,
		Remarks:      req.Remarks,
		WebsiteURL:   req.WebsiteURL,
		Status:       storage.StatusUnderReview,
		Rating:       0,
		CreatedAt:    createdAt,
	}
}
