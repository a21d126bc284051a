package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"potteryloop/shared"
)

// Errors maps field names to user-facing messages. Contact fields are keyed
// "contact.<field>". An empty map means the step is valid.
type Errors map[string]string

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks syntax only: one @, no whitespace, dotted domain.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone accepts any format carrying at least 7 digits.
func ValidPhone(phone string) bool {
	return shared.DigitCount(phone) >= 7
}

// ValidateStep checks the draft against one step's rules.
func ValidateStep(step Step, draft Draft) Errors {
	errs := Errors{}

	switch step {
	case StepEventType:
		if len(draft.EventTypes) == 0 {
			errs["eventTypes"] = "Please select at least one event type"
		}

	case StepGroupSize:
		if draft.GroupSize < 1 {
			errs["groupSize"] = "Please select a group size"
		}

		if draft.GroupSize == GroupSizeOverflow && draft.ExactGroupSize != nil && *draft.ExactGroupSize < GroupSizeOverflow {
			errs["groupSize"] = "Exact group size must be at least 40 when slider is at 40+"
		}

	case StepVenue:
		switch {
		case draft.Venue == "":
			errs["venue"] = "Please select a venue"
		case draft.Venue == VenueOnSite && draft.EffectiveSize() < OnSiteMinimumSize:
			errs["venue"] = fmt.Sprintf("Minimum %d guests required for on-site events", OnSiteMinimumSize)
		}

	case StepWorkshop:
		validateWorkshops(draft, errs)

	case StepDates:
		if len(draft.Dates) == 0 {
			errs["dates"] = "Please select a preferred date"
		}

	case StepContact:
		validateContact(draft, errs)

	case StepReview:
		return validateReview(draft)
	}

	return errs
}

// validateWorkshops requires a selection and reports the most specific
// constraint violation of the first offending workshop.
func validateWorkshops(draft Draft, errs Errors) {
	if len(draft.Workshops) == 0 {
		errs["workshops"] = "Please select at least one workshop"

		return
	}

	effectiveSize := draft.EffectiveSize()

	for _, workshop := range draft.Workshops {
		if WorkshopAllowed(workshop, effectiveSize, draft.Venue) {
			continue
		}

		rules, ok := Constraints[workshop]
		if !ok {
			continue
		}

		switch {
		case effectiveSize < rules.MinSize:
			errs["workshops"] = fmt.Sprintf("Some workshops require at least %d guests", rules.MinSize)
		case effectiveSize > rules.MaxSize:
			errs["workshops"] = fmt.Sprintf("Some workshops support up to %d guests", rules.MaxSize)
		case !venueAllowed(rules, draft.Venue):
			errs["workshops"] = "Some workshops are only available at our studio"
		}

		return
	}
}

func validateContact(draft Draft, errs Errors) {
	if strings.TrimSpace(draft.Contact.Name) == "" {
		errs["contact.name"] = "Name is required"
	}

	switch {
	case strings.TrimSpace(draft.Contact.Phone) == "":
		errs["contact.phone"] = "Phone is required"
	case !ValidPhone(draft.Contact.Phone):
		errs["contact.phone"] = "Please enter a valid phone number"
	}

	switch {
	case strings.TrimSpace(draft.Contact.Email) == "":
		errs["contact.email"] = "Email is required"
	case !ValidEmail(draft.Contact.Email):
		errs["contact.email"] = "Please enter a valid email address"
	}
}

// validateReview re-checks the whole draft. Unlike the Dates step, a flexible
// start date without a concrete selection is acceptable here, and the consent
// flag becomes mandatory.
func validateReview(draft Draft) Errors {
	errs := Errors{}

	if len(draft.EventTypes) == 0 {
		errs["eventTypes"] = "Event type is required"
	}

	if draft.GroupSize < 1 {
		errs["groupSize"] = "Group size is required"
	}

	if draft.Venue == "" {
		errs["venue"] = "Venue is required"
	} else if draft.Venue == VenueOnSite && draft.EffectiveSize() < OnSiteMinimumSize {
		errs["venue"] = fmt.Sprintf("Minimum %d guests required for on-site events", OnSiteMinimumSize)
	}

	if len(draft.Workshops) == 0 {
		errs["workshops"] = "Workshop is required"
	}

	hasSpecificDates := len(draft.Dates) > 0
	hasFlexibleStart := draft.FlexibleDates != nil && draft.FlexibleDates.Start != ""

	if !hasSpecificDates && !hasFlexibleStart {
		errs["dates"] = "Please select dates or provide flexible date range"
	}

	validateContact(draft, errs)

	if !draft.Agreement {
		errs["agreement"] = "You must agree to be contacted to proceed"
	}

	return errs
}

// StepCompleted is the navigation predicate: a completed step may be jumped
// to directly. It is looser than the step validator on purpose.
func StepCompleted(step Step, draft Draft) bool {
	hasEventType := len(draft.EventTypes) > 0
	hasContact := draft.Contact.Name != "" && draft.Contact.Phone != "" && draft.Contact.Email != ""

	switch step {
	case StepEventType:
		return hasEventType
	case StepGroupSize:
		return hasEventType && draft.GroupSize >= 1
	case StepVenue:
		return draft.Venue != ""
	case StepWorkshop:
		return len(draft.Workshops) > 0
	case StepDates:
		return len(draft.Dates) > 0
	case StepContact:
		return hasContact
	case StepReview:
		return hasEventType && hasContact
	default:
		return false
	}
}
