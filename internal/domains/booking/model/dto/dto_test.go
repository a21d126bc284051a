package dto_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potteryloop/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	exact := 45
	req := dto.CreateBookingRequest{
		EventTypes:     []string{"Corporate", "Team Building"},
		GroupSize:      40,
		ExactGroupSize: &exact,
		Venue:          "Studio",
		Workshops:      []string{"Handbuilding workshops"},
		Dates:          []string{"2026-09-12"},
		Contact: dto.ContactRequest{
			Name:  "Jordan Myles",
			Phone: "312-555-0117",
			Email: "jordan@example.com",
			Notes: "Two guests need step-free access",
		},
		Agreement: true,
		WorkshopEstimates: []dto.WorkshopEstimateRequest{
			{Workshop: "Handbuilding workshops", PerPerson: 45, Total: 2025, EffectiveGroupSize: 45},
		},
		TotalEstimate: 2025,
		SubmittedAt:   "2026-08-28T10:00:00Z",
	}

	submission := req.ToModel()

	assert.True(t, strings.HasPrefix(submission.BookingID, "BK-"), "expected generated id, got %s", submission.BookingID)
	assert.Equal(t, "pending", submission.Status)

	_, err := time.Parse(time.RFC3339, submission.Timestamp)
	require.NoError(t, err, "expected an RFC3339 receive timestamp")

	assert.Equal(t, req.EventTypes, submission.EventTypes)
	assert.Equal(t, req.GroupSize, submission.GroupSize)
	require.NotNil(t, submission.ExactGroupSize)
	assert.Equal(t, exact, *submission.ExactGroupSize)
	assert.Equal(t, req.Contact.Name, submission.Contact.Name)
	assert.Equal(t, req.Contact.Notes, submission.Contact.Notes)
	assert.Equal(t, req.TotalEstimate, submission.TotalEstimate)
	assert.Equal(t, req.SubmittedAt, submission.SubmittedAt)

	require.Len(t, submission.WorkshopEstimates, 1)
	assert.Equal(t, 45.0, submission.WorkshopEstimates[0].PerPerson)
}

func TestCreateBookingRequest_ToModel_UniqueIDs(t *testing.T) {
	req := dto.CreateBookingRequest{
		EventTypes: []string{"Birthday"},
		GroupSize:  8,
		Workshops:  []string{"Pottery Wheel classes"},
		Contact: dto.ContactRequest{
			Name:  "A",
			Phone: "1234567",
			Email: "a@b.co",
		},
	}

	first := req.ToModel()
	second := req.ToModel()

	assert.NotEqual(t, first.BookingID, second.BookingID)
	assert.Nil(t, first.FlexibleDates)
}
