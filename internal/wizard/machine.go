package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var nowFunc = time.Now

// OutcomeKind classifies how a submission attempt ended.
type OutcomeKind int

const (
	// OutcomeConfirmed means the booking reached the backend.
	OutcomeConfirmed OutcomeKind = iota + 1
	// OutcomeConfirmedWithWarning means the flow finished for the guest but
	// delivery failed; the reason is kept for diagnostics.
	OutcomeConfirmedWithWarning
	// OutcomeRejected means validation blocked the submission.
	OutcomeRejected
)

// SubmissionOutcome makes the "show success even on delivery failure" policy
// an explicit result instead of swallowed error handling.
type SubmissionOutcome struct {
	Kind   OutcomeKind
	Reason string
	Errors Errors
}

// Machine drives one guest's pass through the booking flow. It owns the
// draft, the step cursor, and the per-field errors, and mirrors all three
// into the state store at every transition.
type Machine struct {
	sessionID string
	draft     Draft
	step      int
	errs      Errors
	submitted bool

	store     StateStore
	submitter Submitter
}

// NewMachine starts a fresh flow.
func NewMachine(sessionID string, store StateStore, submitter Submitter) *Machine {
	return &Machine{
		sessionID: sessionID,
		draft:     DefaultDraft(),
		errs:      Errors{},
		store:     store,
		submitter: submitter,
	}
}

// Resume continues a persisted flow, or starts fresh when none is stored.
func Resume(ctx context.Context, sessionID string, store StateStore, submitter Submitter) (*Machine, error) {
	machine := NewMachine(sessionID, store, submitter)

	state, found, err := store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resume booking flow: %w", err)
	}

	if found {
		machine.draft = state.Draft
		machine.step = clampStep(state.Step)
		machine.submitted = state.Submitted

		if state.Errors != nil {
			machine.errs = state.Errors
		}
	}

	return machine, nil
}

func (m *Machine) Draft() Draft {
	return m.draft
}

func (m *Machine) StepIndex() int {
	return m.step
}

func (m *Machine) CurrentStep() Step {
	return Steps[m.step]
}

func (m *Machine) Errors() Errors {
	return m.errs
}

func (m *Machine) Submitted() bool {
	return m.submitted
}

// UpdateDraft applies an edit and clears any errors, mirroring the flow's
// behavior of dropping stale messages as soon as the guest changes input.
func (m *Machine) UpdateDraft(ctx context.Context, mutate func(*Draft)) error {
	mutate(&m.draft)
	m.errs = Errors{}

	return m.persist(ctx)
}

// Advance validates the active step. On success it runs the step's cleanup
// and moves forward; on failure the errors are surfaced and the cursor stays.
func (m *Machine) Advance(ctx context.Context) (bool, error) {
	step := m.CurrentStep()

	if errs := ValidateStep(step, m.draft); len(errs) > 0 {
		m.errs = errs

		return false, m.persist(ctx)
	}

	m.cleanupAfter(step)
	m.errs = Errors{}

	if m.step < len(Steps)-1 {
		m.step++
	}

	return true, m.persist(ctx)
}

// Retreat moves back one step without validating.
func (m *Machine) Retreat(ctx context.Context) error {
	if m.step > 0 {
		m.step--
	}

	m.errs = Errors{}

	return m.persist(ctx)
}

// JumpTo moves directly to a step when it is the current one, already
// visited, or already completed.
func (m *Machine) JumpTo(ctx context.Context, index int) (bool, error) {
	if index < 0 || index >= len(Steps) {
		return false, nil
	}

	if index > m.step && !StepCompleted(Steps[index], m.draft) {
		return false, nil
	}

	m.step = index
	m.errs = Errors{}

	return true, m.persist(ctx)
}

// Submit re-validates the whole draft from the Review step, prices it, and
// posts it. Delivery failure still finishes the flow for the guest; the
// outcome records the reason.
func (m *Machine) Submit(ctx context.Context) (SubmissionOutcome, error) {
	if errs := ValidateStep(StepReview, m.draft); len(errs) > 0 {
		m.errs = errs

		if err := m.persist(ctx); err != nil {
			return SubmissionOutcome{}, err
		}

		return SubmissionOutcome{Kind: OutcomeRejected, Errors: errs}, nil
	}

	payload := BuildPayload(m.draft, nowFunc())

	outcome := SubmissionOutcome{Kind: OutcomeConfirmed}

	if err := m.submitter.Submit(ctx, payload); err != nil {
		log.Error().Err(err).Msg("booking submission delivery failed")

		outcome = SubmissionOutcome{
			Kind:   OutcomeConfirmedWithWarning,
			Reason: err.Error(),
		}
	}

	m.submitted = true
	m.errs = Errors{}

	if outcome.Kind == OutcomeConfirmedWithWarning {
		// Delivery failed: the submitted state stays persisted, with the
		// reason, so a resumed session lands on the finished view.
		err := m.store.Save(ctx, m.sessionID, State{
			Draft:     m.draft,
			Step:      m.step,
			Errors:    Errors{"delivery": outcome.Reason},
			Submitted: true,
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to persist submitted flow state")
		}

		return outcome, nil
	}

	if err := m.store.Clear(ctx, m.sessionID); err != nil {
		log.Warn().Err(err).Msg("failed to clear persisted flow state")
	}

	return outcome, nil
}

// Restart returns a submitted flow to the first step with a fresh draft.
func (m *Machine) Restart(ctx context.Context) error {
	m.draft = DefaultDraft()
	m.step = 0
	m.errs = Errors{}
	m.submitted = false

	if err := m.store.Clear(ctx, m.sessionID); err != nil {
		return fmt.Errorf("failed to clear persisted flow state: %w", err)
	}

	return nil
}

// cleanupAfter drops selections invalidated by a group size or venue change:
// workshops that no longer fit, and an On-site venue for groups under the
// travel minimum.
func (m *Machine) cleanupAfter(step Step) {
	if step != StepGroupSize && step != StepVenue {
		return
	}

	effectiveSize := m.draft.EffectiveSize()

	if len(m.draft.Workshops) > 0 {
		kept := make([]string, 0, len(m.draft.Workshops))

		for _, workshop := range m.draft.Workshops {
			if WorkshopAllowed(workshop, effectiveSize, m.draft.Venue) {
				kept = append(kept, workshop)
			}
		}

		m.draft.Workshops = kept
	}

	if step == StepGroupSize && m.draft.Venue == VenueOnSite && effectiveSize < OnSiteMinimumSize {
		m.draft.Venue = ""
	}
}

func (m *Machine) persist(ctx context.Context) error {
	err := m.store.Save(ctx, m.sessionID, State{
		Draft:     m.draft,
		Step:      m.step,
		Errors:    m.errs,
		Submitted: m.submitted,
	})
	if err != nil {
		return fmt.Errorf("failed to persist flow state: %w", err)
	}

	return nil
}

func clampStep(step int) int {
	if step < 0 {
		return 0
	}

	if step >= len(Steps) {
		return len(Steps) - 1
	}

	return step
}
