package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"potteryloop/config"
	"potteryloop/shared/constant"

	"github.com/rs/zerolog/log"
)

// SubmissionPayload is the aggregate the wizard posts once, at the end of the
// flow: the draft plus the pricing derived from it.
type SubmissionPayload struct {
	EventTypes        []string       `json:"eventTypes"`
	GroupSize         int            `json:"groupSize"`
	ExactGroupSize    *int           `json:"exactGroupSize,omitempty"`
	Venue             Venue          `json:"venue"`
	Workshops         []string       `json:"workshops"`
	Dates             []string       `json:"dates"`
	FlexibleDates     *FlexibleDates `json:"flexibleDates,omitempty"`
	Timeslots         []string       `json:"timeslots,omitempty"`
	SpecificTime      string         `json:"specificTime,omitempty"`
	Contact           Contact        `json:"contact"`
	Agreement         bool           `json:"agreement"`
	WorkshopEstimates []Estimate     `json:"workshopEstimates"`
	TotalEstimate     float64        `json:"totalEstimate"`
	SubmittedAt       string         `json:"submittedAt"`
}

// BuildPayload prices every selected workshop and stamps the submission.
func BuildPayload(draft Draft, now time.Time) SubmissionPayload {
	estimates := make([]Estimate, len(draft.Workshops))
	total := 0.0

	for i, workshop := range draft.Workshops {
		estimates[i] = CalculatePricing(workshop, draft.Venue, draft.GroupSize, draft.ExactGroupSize)
		total += estimates[i].Total
	}

	return SubmissionPayload{
		EventTypes:        draft.EventTypes,
		GroupSize:         draft.GroupSize,
		ExactGroupSize:    draft.ExactGroupSize,
		Venue:             draft.Venue,
		Workshops:         draft.Workshops,
		Dates:             draft.Dates,
		FlexibleDates:     draft.FlexibleDates,
		Timeslots:         draft.Timeslots,
		SpecificTime:      draft.SpecificTime,
		Contact:           draft.Contact,
		Agreement:         draft.Agreement,
		WorkshopEstimates: estimates,
		TotalEstimate:     roundCents(total),
		SubmittedAt:       now.UTC().Format(constant.DateFormat),
	}
}

// Submitter delivers the finished payload to the booking endpoint.
type Submitter interface {
	Submit(ctx context.Context, payload SubmissionPayload) error
}

// HTTPSubmitter posts the payload to the configured booking endpoint. An
// empty endpoint logs the payload instead, matching local development where
// no backend is wired up.
type HTTPSubmitter struct {
	client   *http.Client
	endpoint string
}

func NewHTTPSubmitter(cfg *config.Config, client *http.Client) *HTTPSubmitter {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPSubmitter{
		client:   client,
		endpoint: cfg.App.SubmissionURL,
	}
}

func (h *HTTPSubmitter) Submit(ctx context.Context, payload SubmissionPayload) error {
	if h.endpoint == "" {
		log.Warn().Interface("payload", payload).Msg("submission endpoint not configured, payload logged only")

		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build submission request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post submission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submission rejected with status %d", resp.StatusCode)
	}

	return nil
}
