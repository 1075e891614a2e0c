// Package email is the notification gateway. One message goes to the fixed
// organizer address per speaker submission, and the contact form relays to the
// site inbox. Delivery runs through Resend; without an API key the mailer
// degrades to log-only so local environments work without credentials.
package email

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/storage"
)

// Result is the speaker-notification outcome. The gateway never returns a Go
// error for these sends; callers read Success and decide whether a failed
// notification fails the whole submission.
type Result struct {
	Success bool
	Err     error
}

type Mailer struct {
	client           *resend.Client // nil = log-only mode
	from             string
	organizer        string
	contactRecipient string
}

func NewMailer(apiKey, from, organizer, contactRecipient string) *Mailer {
	m := &Mailer{
		from:             from,
		organizer:        organizer,
		contactRecipient: contactRecipient,
	}
	if apiKey != "" {
		m.client = resend.NewClient(apiKey)
	} else {
		logging.Log.Warn("MAIL: no Resend API key configured, emails will be logged only")
	}
	return m
}

func (m *Mailer) SendSpeakerApplicationEmail(app *storage.SpeakerApplication) Result {
	subject := fmt.Sprintf("Speaker Application: %s", app.FullName)
	return m.sendSpeakerNotification(subject, applicationHTML(app), applicationText(app))
}

func (m *Mailer) SendSpeakerNominationEmail(nom *storage.SpeakerNomination) Result {
	subject := fmt.Sprintf("Speaker Nomination: %s", nom.FullName)
	return m.sendSpeakerNotification(subject, nominationHTML(nom), nominationText(nom))
}

func (m *Mailer) sendSpeakerNotification(subject, htmlBody, textBody string) Result {
	if m.client == nil {
		logging.Log.Warnf("MAIL: not sending %q (no provider configured)", subject)
		return Result{Success: true}
	}

	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.organizer},
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
	})
	if err != nil {
		logging.Log.Errorf("MAIL: failed to send %q to %s: %v", subject, m.organizer, err)
		return Result{Success: false, Err: err}
	}
	return Result{Success: true}
}

// SendContactEmail relays a contact-form message with the submitter as
// reply-to. Returns an error only on provider failure; the no-provider path
// logs and succeeds (delivery is best-effort for this endpoint).
func (m *Mailer) SendContactEmail(name, fromEmail, message string) error {
	subject := "TEDx Beixinqiao: New Contact"

	if m.client == nil {
		logging.Log.Warnf("MAIL: contact message from %s <%s> not sent (no provider configured)", name, fromEmail)
		return nil
	}

	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.contactRecipient},
		ReplyTo: fromEmail,
		Subject: subject,
		Html:    contactHTML(name, fromEmail, message),
		Text:    contactText(name, fromEmail, message),
	})
	if err != nil {
		logging.Log.Errorf("MAIL: failed to relay contact message to %s: %v", m.contactRecipient, err)
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}

func applicationHTML(app *storage.SpeakerApplication) string {
	var b strings.Builder
	b.WriteString("<h2>New Speaker Application Received</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Date:</strong> %s</p>\n", time.Now().Format(time.RFC1123))
	b.WriteString("<h3>Personal Information</h3>\n<ul>\n")
	writeField(&b, "Full Name", app.FullName)
	writeField(&b, "Email", app.Email)
	writeField(&b, "Mobile Phone", app.MobilePhone)
	writeField(&b, "WeChat ID", app.WechatID)
	writeField(&b, "Prior TED Talk", app.PriorTedTalk)
	writeField(&b, "Job", app.Job)
	if app.Remarks != "" {
		writeField(&b, "Remarks", app.Remarks)
	}
	writeField(&b, "Rehearsal Availability", app.RehearsalAvailability)
	b.WriteString("</ul>\n<h3>Presentation Idea</h3>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(app.IdeaPresentation))
	b.WriteString("<h3>Idea Details</h3>\n<ul>\n")
	writeField(&b, "Common Belief", app.CommonBelief)
	writeField(&b, "Core Idea", app.CoreIdea)
	writeField(&b, "Personal Insight", app.PersonalInsight)
	writeField(&b, "Potential Impact", app.PotentialImpact)
	b.WriteString("</ul>\n")
	if app.WebsiteURL != "" {
		u := html.EscapeString(app.WebsiteURL)
		fmt.Fprintf(&b, "<p><strong>Website URL:</strong> <a href=%q>%s</a></p>\n", u, u)
	}
	if app.AttachmentRef != "" {
		fmt.Fprintf(&b, "<p><strong>PDF Attachment:</strong> %s</p>\n", html.EscapeString(app.AttachmentRef))
	} else {
		b.WriteString("<p><em>No PDF attachment was provided.</em></p>\n")
	}
	return b.String()
}

func nominationHTML(nom *storage.SpeakerNomination) string {
	var b strings.Builder
	b.WriteString("<h2>New Speaker Nomination Received</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Date:</strong> %s</p>\n", time.Now().Format(time.RFC1123))
	b.WriteString("<h3>Nominee Information</h3>\n<ul>\n")
	writeField(&b, "Full Name", nom.FullName)
	writeField(&b, "Contact", nom.Contact)
	writeField(&b, "Prior TED Talk", nom.PriorTedTalk)
	writeField(&b, "Remarks", nom.Remarks)
	b.WriteString("</ul>\n")
	if nom.WebsiteURL != "" {
		u := html.EscapeString(nom.WebsiteURL)
		fmt.Fprintf(&b, "<p><strong>Website URL:</strong> <a href=%q>%s</a></p>\n", u, u)
	}
	return b.String()
}

func applicationText(app *storage.SpeakerApplication) string {
	var b strings.Builder
	b.WriteString("New Speaker Application Received\n\n")
	writeTextField(&b, "Full Name", app.FullName)
	writeTextField(&b, "Email", app.Email)
	writeTextField(&b, "Mobile Phone", app.MobilePhone)
	writeTextField(&b, "WeChat ID", app.WechatID)
	writeTextField(&b, "Prior TED Talk", app.PriorTedTalk)
	writeTextField(&b, "Job", app.Job)
	if app.Remarks != "" {
		writeTextField(&b, "Remarks", app.Remarks)
	}
	writeTextField(&b, "Rehearsal Availability", app.RehearsalAvailability)
	fmt.Fprintf(&b, "\nPresentation Idea:\n%s\n\n", app.IdeaPresentation)
	writeTextField(&b, "Common Belief", app.CommonBelief)
	writeTextField(&b, "Core Idea", app.CoreIdea)
	writeTextField(&b, "Personal Insight", app.PersonalInsight)
	writeTextField(&b, "Potential Impact", app.PotentialImpact)
	if app.WebsiteURL != "" {
		writeTextField(&b, "Website URL", app.WebsiteURL)
	}
	if app.AttachmentRef != "" {
		writeTextField(&b, "PDF Attachment", app.AttachmentRef)
	}
	return b.String()
}

func nominationText(nom *storage.SpeakerNomination) string {
	var b strings.Builder
	b.WriteString("New Speaker Nomination Received\n\n")
	writeTextField(&b, "Full Name", nom.FullName)
	writeTextField(&b, "Contact", nom.Contact)
	writeTextField(&b, "Prior TED Talk", nom.PriorTedTalk)
	writeTextField(&b, "Remarks", nom.Remarks)
	if nom.WebsiteURL != "" {
		writeTextField(&b, "Website URL", nom.WebsiteURL)
	}
	return b.String()
}

func contactHTML(name, fromEmail, message string) string {
	safeMessage := strings.ReplaceAll(html.EscapeString(message), "\n", "<br />")
	var b strings.Builder
	b.WriteString("<h2>New message via tedxbeixinqiao.com</h2>\n<ul>\n")
	writeField(&b, "From", name)
	writeField(&b, "Email", fromEmail)
	fmt.Fprintf(&b, "<li><strong>Received:</strong> %s</li>\n", time.Now().Format(time.RFC1123))
	b.WriteString("</ul>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", safeMessage)
	b.WriteString("<p><em>This email was sent automatically by the contact form on tedxbeixinqiao.com</em></p>\n")
	return b.String()
}

func contactText(name, fromEmail, message string) string {
	return fmt.Sprintf("TEDx Beixinqiao - New Contact\nFrom: %s\nEmail: %s\n\n%s", name, fromEmail, message)
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<li><strong>%s:</strong> %s</li>\n", label, html.EscapeString(value))
}

func writeTextField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
