// Package validation holds the form rules for both speaker submission kinds.
// The same rules back the HTTP handlers and the live word counters shown next
// to the long-form fields, so the counting functions are exported.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/api/models"
)

// MaxAttachmentBytes is the upload ceiling for the optional PDF attachment.
// Exactly 2 MB is accepted, one byte over is rejected.
const MaxAttachmentBytes = 2 * 1024 * 1024

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps the offending JSON field name to a human-readable message.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

// WordCount counts whitespace-separated non-empty tokens. This is the rule the
// word-limit fields are enforced with, and the one any "N/limit words" counter
// must mirror.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

func ValidateApplication(req *models.SpeakerApplicationRequest) Errors {
	errs := Errors{}

	checkLength(errs, "fullName", "full name", req.FullName, 2, 30)
	if !emailPattern.MatchString(req.Email) {
		errs["email"] = "please enter a valid email address"
	}
	checkLength(errs, "mobilePhone", "mobile phone", req.MobilePhone, 5, 30)
	checkLength(errs, "wechatId", "WeChat ID", req.WechatID, 2, 30)
	checkLength(errs, "priorTedTalk", "prior TED talk", req.PriorTedTalk, 2, 30)
	checkLength(errs, "job", "job", req.Job, 2, 30)
	if req.Remarks != "" && utf8.RuneCountInString(req.Remarks) > 30 {
		errs["remarks"] = "remarks must be at most 30 characters"
	}
	checkWordRange(errs, "ideaPresentation", "idea presentation", req.IdeaPresentation, 10, 50)
	checkEssay(errs, "commonBelief", "common belief", req.CommonBelief)
	checkEssay(errs, "coreIdea", "core idea", req.CoreIdea)
	checkEssay(errs, "personalInsight", "personal insight", req.PersonalInsight)
	checkEssay(errs, "potentialImpact", "potential impact", req.PotentialImpact)
	checkLength(errs, "rehearsalAvailability", "rehearsal availability", req.RehearsalAvailability, 2, 50)
	checkOptionalURL(errs, req.WebsiteURL)
	if req.AttachmentSize > MaxAttachmentBytes {
		errs["attachment"] = "the attached PDF must be 2 MB or smaller"
	}

	return errs
}

func ValidateNomination(req *models.SpeakerNominationRequest) Errors {
	errs := Errors{}

	checkLength(errs, "fullName", "full name", req.FullName, 2, 30)
	checkLength(errs, "contact", "contact", req.Contact, 5, 30)
	checkLength(errs, "priorTedTalk", "prior TED talk", req.PriorTedTalk, 2, 30)
	// Unlike applications, remarks are required for nominations.
	checkLength(errs, "remarks", "remarks", req.Remarks, 2, 30)
	checkOptionalURL(errs, req.WebsiteURL)

	return errs
}

func checkLength(errs Errors, field, label, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		errs[field] = fmt.Sprintf("%s must be between %d and %d characters", label, min, max)
	}
}

// checkEssay enforces the long-form rule: at least 5 characters, at most 150 words.
func checkEssay(errs Errors, field, label, value string) {
	if utf8.RuneCountInString(value) < 5 {
		errs[field] = fmt.Sprintf("%s must be at least 5 characters", label)
		return
	}
	if WordCount(value) > 150 {
		errs[field] = fmt.Sprintf("%s must be at most 150 words", label)
	}
}

func checkWordRange(errs Errors, field, label, value string, min, max int) {
	n := WordCount(value)
	if n < min {
		errs[field] = fmt.Sprintf("%s must be at least %d words", label, min)
	} else if n > max {
		errs[field] = fmt.Sprintf("%s must be at most %d words", label, max)
	}
}

func checkOptionalURL(errs Errors, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs["websiteUrl"] = "website must be a valid URL"
	}
}
