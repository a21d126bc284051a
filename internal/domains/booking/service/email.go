package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	textTemplate "text/template"

	"potteryloop/internal/domains/booking/model"
	"potteryloop/shared/constant"
	"potteryloop/shared/timezone"
)

const bookingHTMLTemplate = `<h2>New Booking Request</h2>
<p><strong>Booking ID:</strong> {{.BookingID}}<br>
<strong>Received:</strong> {{.Received}}</p>
<h3>Contact</h3>
<p><strong>Name:</strong> {{.Name}}<br>
<strong>Phone:</strong> {{.Phone}}<br>
<strong>Email:</strong> {{.Email}}<br>
<strong>Notes:</strong> {{.Notes}}</p>
<h3>Event</h3>
<p><strong>Event Types:</strong> {{.EventTypes}}<br>
<strong>Group Size:</strong> {{.GroupSize}}<br>
<strong>Venue:</strong> {{.Venue}}<br>
<strong>Dates:</strong> {{.Dates}}<br>
<strong>Timeslots:</strong> {{.Timeslots}}</p>
<h3>Workshops</h3>
<ul>
{{- range .Workshops}}
<li>{{.Name}}: {{.PerPerson}} per person, {{.Total}} total{{if .ReadinessNote}} ({{.ReadinessNote}}){{end}}</li>
{{- end}}
</ul>
<p><strong>Total Estimate:</strong> {{.TotalEstimate}}</p>`

const bookingTextTemplate = `New Booking Request

Booking ID: {{.BookingID}}
Received: {{.Received}}

Contact
Name: {{.Name}}
Phone: {{.Phone}}
Email: {{.Email}}
Notes: {{.Notes}}

Event
Event Types: {{.EventTypes}}
Group Size: {{.GroupSize}}
Venue: {{.Venue}}
Dates: {{.Dates}}
Timeslots: {{.Timeslots}}

Workshops
{{- range .Workshops}}
- {{.Name}}: {{.PerPerson}} per person, {{.Total}} total{{if .ReadinessNote}} ({{.ReadinessNote}}){{end}}
{{- end}}

Total Estimate: {{.TotalEstimate}}`

var (
	bookingHTML = template.Must(template.New("bookingHTML").Parse(bookingHTMLTemplate))
	bookingText = textTemplate.Must(textTemplate.New("bookingText").Parse(bookingTextTemplate))
)

type workshopLine struct {
	Name          string
	PerPerson     string
	Total         string
	ReadinessNote string
}

type bookingEmailView struct {
	BookingID     string
	Received      string
	Name          string
	Phone         string
	Email         string
	Notes         string
	EventTypes    string
	GroupSize     string
	Venue         string
	Dates         string
	Timeslots     string
	Workshops     []workshopLine
	TotalEstimate string
}

func buildEmailView(submission model.Submission) bookingEmailView {
	groupSize := strconv.Itoa(submission.GroupSize)
	if submission.ExactGroupSize != nil {
		groupSize = fmt.Sprintf("%d (exactly %d)", submission.GroupSize, *submission.ExactGroupSize)
	}

	workshops := make([]workshopLine, len(submission.WorkshopEstimates))
	for i, est := range submission.WorkshopEstimates {
		workshops[i] = workshopLine{
			Name:          est.Workshop,
			PerPerson:     formatAmount(est.PerPerson),
			Total:         formatAmount(est.Total),
			ReadinessNote: est.ReadinessNote,
		}
	}

	return bookingEmailView{
		BookingID:     submission.BookingID,
		Received:      timezone.FormatStamp(submission.Timestamp, constant.DisplayFormat),
		Name:          orNotSet(submission.Contact.Name),
		Phone:         orNotSet(submission.Contact.Phone),
		Email:         orNotSet(submission.Contact.Email),
		Notes:         orNotSet(submission.Contact.Notes),
		EventTypes:    orNotSet(strings.Join(submission.EventTypes, ", ")),
		GroupSize:     groupSize,
		Venue:         orNotSet(submission.Venue),
		Dates:         orNotSet(formatDates(submission)),
		Timeslots:     orNotSet(formatTimeslots(submission)),
		Workshops:     workshops,
		TotalEstimate: formatAmount(submission.TotalEstimate),
	}
}

func renderEmail(submission model.Submission) (html, text string, err error) {
	view := buildEmailView(submission)

	var htmlBuf, textBuf bytes.Buffer

	if err = bookingHTML.Execute(&htmlBuf, view); err != nil {
		return "", "", fmt.Errorf("failed to render booking email html: %w", err)
	}

	if err = bookingText.Execute(&textBuf, view); err != nil {
		return "", "", fmt.Errorf("failed to render booking email text: %w", err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

func formatDates(submission model.Submission) string {
	if submission.FlexibleDates != nil {
		parts := []string{}
		if submission.FlexibleDates.Start != "" {
			parts = append(parts, "around "+submission.FlexibleDates.Start)
		}

		if submission.FlexibleDates.Flexibility != "" && submission.FlexibleDates.Flexibility != "exact" {
			parts = append(parts, "flexible by "+submission.FlexibleDates.Flexibility+" days")
		}

		if submission.FlexibleDates.Notes != "" {
			parts = append(parts, submission.FlexibleDates.Notes)
		}

		return strings.Join(parts, ", ")
	}

	return strings.Join(submission.Dates, ", ")
}

func formatTimeslots(submission model.Submission) string {
	if submission.SpecificTime != "" {
		return submission.SpecificTime
	}

	return strings.Join(submission.Timeslots, ", ")
}

func formatAmount(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}

func orNotSet(value string) string {
	if value == "" {
		return constant.NotSet
	}

	return value
}
