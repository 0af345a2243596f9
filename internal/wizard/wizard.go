// Package wizard drives the multi-step registration flow: four sequential
// steps, each validated before advancement, with a single submit at the end.
// Nothing leaves the process until Submit; intermediate steps only mutate
// the local draft.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/tutorlink/client/internal/geo"
	"github.com/tutorlink/client/internal/logger"
	"github.com/tutorlink/client/internal/model"
	"github.com/tutorlink/client/internal/validate"
)

// Steps of the registration flow.
const (
	StepAccount = 1
	StepProfile = 2
	StepAadhaar = 3
	StepAddress = 4
)

// State of the wizard's submission lifecycle.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateDone
)

// Messages surfaced by step validation, first failure wins.
const (
	MsgRequiredFields   = "Please fill in all required fields"
	MsgInvalidEmail     = "Please enter a valid email address"
	MsgShortPassword    = "Password must be at least 6 characters"
	MsgPasswordMismatch = "Passwords do not match"
	MsgInvalidPhone     = "Please enter a valid 10-digit phone number"
	MsgLearnerDetails   = "Please fill in all learner details"
	MsgProviderDetails  = "Please fill in all provider details"
	MsgAadhaarRequired  = "Please enter Aadhaar number"
	MsgInvalidAadhaar   = "Please enter a valid 12-digit Aadhaar number"
	MsgAddressFields    = "Please fill in all address fields"
	MsgLocationNeeded   = "Please allow location access to continue"
	MsgLocationFailed   = "Unable to get location. Please enable location services."
)

// Registrar creates the identity once every step has passed.
type Registrar interface {
	Register(ctx context.Context, draft model.Draft, role model.Role) error
}

// Wizard collects a new identity for one role across four steps.
type Wizard struct {
	role      model.Role
	registrar Registrar
	locator   geo.Locator
	logger    *logger.Logger

	draft  model.Draft
	step   int
	state  State
	errMsg string
}

func New(role model.Role, registrar Registrar, locator geo.Locator, logger *logger.Logger) *Wizard {
	return &Wizard{
		role:      role,
		registrar: registrar,
		locator:   locator,
		logger:    logger.With("component", "wizard"),
		step:      StepAccount,
		state:     StateEditing,
	}
}

// Draft exposes the in-progress aggregate for editing between transitions.
func (w *Wizard) Draft() *model.Draft {
	return &w.draft
}

// Step returns the current step cursor, 1..4.
func (w *Wizard) Step() int {
	return w.step
}

func (w *Wizard) State() State {
	return w.state
}

// Err returns the currently surfaced validation or submission message,
// empty when none.
func (w *Wizard) Err() string {
	return w.errMsg
}

// Next advances to the following step if the current one validates. On
// failure the step is unchanged, the message is surfaced and no fields are
// cleared.
func (w *Wizard) Next() bool {
	if msg := w.validateStep(w.step); msg != "" {
		w.errMsg = msg
		return false
	}

	w.errMsg = ""
	if w.step < StepAddress {
		w.step++
	}
	return true
}

// Prev steps back unconditionally and clears any surfaced error.
func (w *Wizard) Prev() {
	if w.step > StepAccount {
		w.step--
	}
	w.errMsg = ""
}

// CaptureLocation asks the device for a single fix and records it on the
// draft. On failure the coordinate stays unset and the user may retry as
// often as they like.
func (w *Wizard) CaptureLocation(ctx context.Context) error {
	coords, err := w.locator.Locate(ctx)
	if err != nil {
		w.errMsg = MsgLocationFailed
		return fmt.Errorf("capture location: %w", err)
	}

	w.draft.Address.Coordinates = coords
	w.errMsg = ""
	return nil
}

// Submit validates the final step and hands the draft to the registrar. On
// failure the wizard returns to the final step with the collaborator's
// message surfaced and the draft intact for correction and resubmission. On
// success the draft is discarded.
func (w *Wizard) Submit(ctx context.Context) error {
	if msg := w.validateStep(StepAddress); msg != "" {
		w.errMsg = msg
		return errors.New(msg)
	}

	w.errMsg = ""
	w.state = StateSubmitting

	if err := w.registrar.Register(ctx, w.draft, w.role); err != nil {
		w.state = StateEditing
		w.step = StepAddress
		w.errMsg = err.Error()
		return err
	}

	w.logger.Info("registration completed", "role", w.role, "email", w.draft.Email)

	w.state = StateDone
	w.draft = model.Draft{}
	return nil
}

func (w *Wizard) validateStep(step int) string {
	d := &w.draft

	switch step {
	case StepAccount:
		if d.Name == "" || d.Email == "" || d.Password == "" || d.ConfirmPassword == "" || d.Phone == "" {
			return MsgRequiredFields
		}
		if !validate.Email(d.Email) {
			return MsgInvalidEmail
		}
		if len(d.Password) < 6 {
			return MsgShortPassword
		}
		if d.Password != d.ConfirmPassword {
			return MsgPasswordMismatch
		}
		if !validate.Phone(d.Phone) {
			return MsgInvalidPhone
		}
	case StepProfile:
		if w.role == model.RoleProvider {
			if len(d.Subjects) == 0 || d.ExperienceYears <= 0 || d.HourlyRate <= 0 {
				return MsgProviderDetails
			}
			return ""
		}
		if d.DependentName == "" || d.Grade == "" || d.Board == "" {
			return MsgLearnerDetails
		}
	case StepAadhaar:
		if d.AadhaarNumber == "" {
			return MsgAadhaarRequired
		}
		if !validate.Aadhaar(d.AadhaarNumber) {
			return MsgInvalidAadhaar
		}
	case StepAddress:
		a := d.Address
		if a.Street == "" || a.City == "" || a.State == "" || a.Pincode == "" {
			return MsgAddressFields
		}
		if !a.Coordinates.Captured() {
			return MsgLocationNeeded
		}
	}

	return ""
}
