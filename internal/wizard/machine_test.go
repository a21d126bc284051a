package wizard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potteryloop/internal/wizard"
)

type stubSubmitter struct {
	err      error
	payloads []wizard.SubmissionPayload
}

func (s *stubSubmitter) Submit(_ context.Context, payload wizard.SubmissionPayload) error {
	s.payloads = append(s.payloads, payload)

	return s.err
}

func newMachine(t *testing.T) (*wizard.Machine, *wizard.MemoryStateStore, *stubSubmitter) {
	t.Helper()

	store := wizard.NewMemoryStateStore()
	submitter := &stubSubmitter{}

	return wizard.NewMachine("session-1", store, submitter), store, submitter
}

func advanceWith(t *testing.T, m *wizard.Machine, mutate func(*wizard.Draft)) {
	t.Helper()

	ctx := context.Background()

	require.NoError(t, m.UpdateDraft(ctx, mutate))

	ok, err := m.Advance(ctx)
	require.NoError(t, err)
	require.True(t, ok, "expected step %s to validate, errors: %v", m.CurrentStep(), m.Errors())
}

func runToReview(t *testing.T, m *wizard.Machine) {
	t.Helper()

	advanceWith(t, m, func(d *wizard.Draft) { d.EventTypes = []string{"Corporate"} })
	advanceWith(t, m, func(d *wizard.Draft) { d.GroupSize = 5 })
	advanceWith(t, m, func(d *wizard.Draft) { d.Venue = wizard.VenueStudio })
	advanceWith(t, m, func(d *wizard.Draft) { d.Workshops = []string{"Pottery Wheel classes"} })
	advanceWith(t, m, func(d *wizard.Draft) { d.Dates = []string{"2026-09-12"} })
	advanceWith(t, m, func(d *wizard.Draft) {
		d.Contact = wizard.Contact{Name: "Jordan", Phone: "3125550117", Email: "jordan@example.com"}
	})

	require.Equal(t, wizard.StepReview, m.CurrentStep())
}

func TestMachine_AdvanceRejectsInvalidStep(t *testing.T) {
	m, _, _ := newMachine(t)
	ctx := context.Background()

	ok, err := m.Advance(ctx)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, wizard.StepEventType, m.CurrentStep())
	assert.Contains(t, m.Errors(), "eventTypes")
}

func TestMachine_AdvanceRejectsOnSiteSmallGroup(t *testing.T) {
	m, _, _ := newMachine(t)
	ctx := context.Background()

	advanceWith(t, m, func(d *wizard.Draft) { d.EventTypes = []string{"Corporate"} })
	advanceWith(t, m, func(d *wizard.Draft) { d.GroupSize = 8 })

	require.NoError(t, m.UpdateDraft(ctx, func(d *wizard.Draft) { d.Venue = wizard.VenueOnSite }))

	ok, err := m.Advance(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, wizard.StepVenue, m.CurrentStep())
	assert.Equal(t, "Minimum 10 guests required for on-site events", m.Errors()["venue"])
}

func TestMachine_CleanupOnGroupSizeChange(t *testing.T) {
	m, _, _ := newMachine(t)
	ctx := context.Background()

	runToReview(t, m)

	// Go back to the group size step and shrink an on-site-sized group.
	ok, err := m.JumpTo(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, m.UpdateDraft(ctx, func(d *wizard.Draft) {
		d.Venue = wizard.VenueOnSite
		d.Workshops = []string{"Custom mug glazing workshop"}
		d.GroupSize = 4
	}))

	ok, err = m.Advance(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	draft := m.Draft()

	// Under ten guests the venue clears. The workshop survives because it
	// was still valid at the moment of filtering.
	assert.Equal(t, wizard.Venue(""), draft.Venue)
	assert.Equal(t, []string{"Custom mug glazing workshop"}, draft.Workshops)
}

func TestMachine_CleanupDropsOversizedWorkshops(t *testing.T) {
	m, _, _ := newMachine(t)
	ctx := context.Background()

	runToReview(t, m)

	ok, err := m.JumpTo(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, m.UpdateDraft(ctx, func(d *wizard.Draft) {
		d.GroupSize = 20
		d.Workshops = []string{"Pottery Wheel classes", "Handbuilding workshops"}
	}))

	ok, err = m.Advance(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// The wheel tops out at 15; handbuilding keeps its seat.
	assert.Equal(t, []string{"Handbuilding workshops"}, m.Draft().Workshops)
}

func TestMachine_JumpToGating(t *testing.T) {
	m, _, _ := newMachine(t)
	ctx := context.Background()

	// A fresh flow cannot skip ahead to contact.
	ok, err := m.JumpTo(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	runToReview(t, m)

	// Backward navigation is always allowed.
	ok, err = m.JumpTo(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// Forward to review is allowed because its completion predicate holds.
	ok, err = m.JumpTo(ctx, 6)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMachine_SubmitRejectsWithoutAgreement(t *testing.T) {
	m, _, submitter := newMachine(t)
	ctx := context.Background()

	runToReview(t, m)

	outcome, err := m.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, wizard.OutcomeRejected, outcome.Kind)
	assert.Equal(t, "You must agree to be contacted to proceed", outcome.Errors["agreement"])
	assert.Empty(t, submitter.payloads)
	assert.False(t, m.Submitted())
}

func TestMachine_SubmitConfirmed(t *testing.T) {
	m, store, submitter := newMachine(t)
	ctx := context.Background()

	runToReview(t, m)
	require.NoError(t, m.UpdateDraft(ctx, func(d *wizard.Draft) { d.Agreement = true }))

	outcome, err := m.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, wizard.OutcomeConfirmed, outcome.Kind)
	assert.True(t, m.Submitted())

	require.Len(t, submitter.payloads, 1)
	payload := submitter.payloads[0]

	require.Len(t, payload.WorkshopEstimates, 1)
	assert.Equal(t, 67.5, payload.WorkshopEstimates[0].PerPerson)
	assert.Equal(t, 337.5, payload.WorkshopEstimates[0].Total)
	assert.Equal(t, 337.5, payload.TotalEstimate)
	assert.NotEmpty(t, payload.SubmittedAt)

	// Persisted state is gone after a successful submission.
	_, found, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMachine_SubmitDeliveryFailureStillFinishes(t *testing.T) {
	m, store, submitter := newMachine(t)
	ctx := context.Background()

	submitter.err = errors.New("backend unreachable")

	runToReview(t, m)
	require.NoError(t, m.UpdateDraft(ctx, func(d *wizard.Draft) { d.Agreement = true }))

	outcome, err := m.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, wizard.OutcomeConfirmedWithWarning, outcome.Kind)
	assert.Equal(t, "backend unreachable", outcome.Reason)
	assert.True(t, m.Submitted())

	// The finished flow survives a failed delivery; a resumed session keeps
	// the draft and the failure reason instead of starting over.
	state, found, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, state.Submitted)
	assert.Equal(t, m.Draft(), state.Draft)
	assert.Equal(t, "backend unreachable", state.Errors["delivery"])

	resumed, err := wizard.Resume(ctx, "session-1", store, submitter)
	require.NoError(t, err)
	assert.True(t, resumed.Submitted())
}

func TestMachine_Restart(t *testing.T) {
	m, store, _ := newMachine(t)
	ctx := context.Background()

	runToReview(t, m)
	require.NoError(t, m.UpdateDraft(ctx, func(d *wizard.Draft) { d.Agreement = true }))

	_, err := m.Submit(ctx)
	require.NoError(t, err)

	require.NoError(t, m.Restart(ctx))

	assert.Equal(t, wizard.StepEventType, m.CurrentStep())
	assert.False(t, m.Submitted())
	assert.Equal(t, wizard.DefaultDraft(), m.Draft())

	_, found, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMachine_ResumeFromStore(t *testing.T) {
	store := wizard.NewMemoryStateStore()
	submitter := &stubSubmitter{}
	ctx := context.Background()

	first := wizard.NewMachine("session-2", store, submitter)

	require.NoError(t, first.UpdateDraft(ctx, func(d *wizard.Draft) { d.EventTypes = []string{"Birthday"} }))

	ok, err := first.Advance(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	resumed, err := wizard.Resume(ctx, "session-2", store, submitter)
	require.NoError(t, err)

	assert.Equal(t, wizard.StepGroupSize, resumed.CurrentStep())
	assert.Equal(t, []string{"Birthday"}, resumed.Draft().EventTypes)

	fresh, err := wizard.Resume(ctx, "session-never-seen", store, submitter)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepEventType, fresh.CurrentStep())
}
