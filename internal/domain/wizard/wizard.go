package wizard

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"homeez_booking/internal/domain/entities"
)

const (
	// BookingIDPrefix prefixes the display-only booking id.
	BookingIDPrefix = "BK"
	bookingIDDigits = 1_000_000

	// BookingWindowMonths is how far ahead a date may be booked.
	BookingWindowMonths = 2
)

var (
	ErrMissingUser    = errors.New("wizard requires a signed-in user")
	ErrUnknownService = errors.New("wizard requires a service")
	ErrUnknownOption  = errors.New("option does not belong to the service")
	ErrCorruptDraft   = errors.New("draft does not match the catalog")
)

// Catalog is the read-only reference data a wizard works against.
type Catalog struct {
	Service   entities.Service
	Providers []entities.Provider
	TimeSlots []entities.TimeSlot
}

// Draft is the wizard's working state. It is plain data so it can be stored
// between requests and restored with Restore.
type Draft struct {
	UserID        string                     `json:"user_id"`
	UserEmail     string                     `json:"user_email,omitempty"`
	ServiceID     string                     `json:"service_id"`
	Option        entities.ServiceOption     `json:"option"`
	Provider      *entities.Provider         `json:"provider,omitempty"`
	Date          time.Time                  `json:"date"`
	TimeSlot      *entities.TimeSlot         `json:"time_slot,omitempty"`
	Address       entities.Address           `json:"address"`
	PaymentMethod entities.PaymentMethod     `json:"payment_method"`
	Step          Step                       `json:"step"`
	Notice        *Notice                    `json:"notice,omitempty"`
	Booking       *entities.ConfirmedBooking `json:"booking,omitempty"`
}

func (d Draft) clone() Draft {
	if d.Provider != nil {
		p := *d.Provider
		d.Provider = &p
	}
	if d.TimeSlot != nil {
		s := *d.TimeSlot
		d.TimeSlot = &s
	}
	if d.Notice != nil {
		n := *d.Notice
		d.Notice = &n
	}
	if d.Booking != nil {
		b := *d.Booking
		d.Booking = &b
	}
	return d
}

// RandomSource yields the digits of the display booking id.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

type Option func(*Wizard)

func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

func WithRandom(src RandomSource) Option {
	return func(w *Wizard) { w.rand = src }
}

// Wizard owns one booking draft. It is not safe for concurrent use; each
// caller works on its own instance.
type Wizard struct {
	draft   Draft
	catalog Catalog
	now     func() time.Time
	rand    RandomSource
}

type Params struct {
	User     entities.User
	Catalog  Catalog
	OptionID string
}

// New starts a wizard on the Details step with the option preselected.
func New(p Params, opts ...Option) (*Wizard, error) {
	if !p.User.Authenticated() {
		return nil, ErrMissingUser
	}
	if p.Catalog.Service.ID == "" {
		return nil, ErrUnknownService
	}
	opt, ok := p.Catalog.Service.Option(p.OptionID)
	if !ok {
		return nil, ErrUnknownOption
	}

	w := newWizard(p.Catalog, opts)
	w.draft = Draft{
		UserID:        p.User.ID,
		UserEmail:     p.User.Email,
		ServiceID:     p.Catalog.Service.ID,
		Option:        opt,
		Date:          civilDay(w.now()),
		PaymentMethod: entities.DefaultPaymentMethod,
		Step:          StepDetails,
	}
	return w, nil
}

// Restore rebuilds a wizard from a stored draft.
func Restore(d Draft, c Catalog, opts ...Option) (*Wizard, error) {
	if !d.Step.Valid() || d.ServiceID == "" || d.ServiceID != c.Service.ID {
		return nil, ErrCorruptDraft
	}
	// Later steps rely on the selections made before them.
	if (d.Step > StepDetails && d.Provider == nil) ||
		(d.Step > StepDateTime && d.TimeSlot == nil) ||
		(d.Step.Terminal() && d.Booking == nil) {
		return nil, ErrCorruptDraft
	}
	w := newWizard(c, opts)
	w.draft = d.clone()
	return w, nil
}

func newWizard(c Catalog, opts []Option) *Wizard {
	w := &Wizard{catalog: c, now: time.Now, rand: globalRandom{}}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Draft returns a copy of the current state.
func (w *Wizard) Draft() Draft { return w.draft.clone() }

func (w *Wizard) Step() Step { return w.draft.Step }

func (w *Wizard) Notice() *Notice { return w.draft.Notice }

func (w *Wizard) Quote() Quote { return QuoteFor(w.draft.Option) }

// Booking returns the confirmed booking once the wizard reached Confirmation.
func (w *Wizard) Booking() (entities.ConfirmedBooking, bool) {
	if w.draft.Booking == nil {
		return entities.ConfirmedBooking{}, false
	}
	return *w.draft.Booking, true
}

// EligibleProviders lists providers that offer the active service and are not busy.
func (w *Wizard) EligibleProviders() []entities.Provider {
	out := make([]entities.Provider, 0, len(w.catalog.Providers))
	for _, p := range w.catalog.Providers {
		if p.Eligible(w.draft.ServiceID) {
			out = append(out, p)
		}
	}
	return out
}

// CanAdvance reports whether Next would currently be accepted.
func (w *Wizard) CanAdvance() bool {
	return w.guard() == nil
}

func (w *Wizard) SelectOption(optionID string) error {
	if n := w.requireStep(StepDetails, "service option"); n != nil {
		return w.reject(n)
	}
	opt, ok := w.catalog.Service.Option(optionID)
	if !ok {
		return w.reject(newNotice(NoticeUnknownOption, "Please choose one of the listed service options."))
	}
	w.draft.Option = opt
	w.accept()
	return nil
}

func (w *Wizard) SelectProvider(providerID string) error {
	if n := w.requireStep(StepDetails, "provider"); n != nil {
		return w.reject(n)
	}
	p, ok := w.findProvider(providerID)
	if !ok {
		return w.reject(newNotice(NoticeUnknownProvider, "Please select a provider from the list."))
	}
	if !p.Supports(w.draft.ServiceID) {
		return w.reject(newNotice(NoticeProviderUnavailable, fmt.Sprintf("%s does not offer this service.", p.Name)))
	}
	if p.Busy {
		return w.reject(newNotice(NoticeProviderUnavailable, fmt.Sprintf("%s is currently busy. Please pick another provider.", p.Name)))
	}
	w.draft.Provider = &p
	w.accept()
	return nil
}

// SelectDate sets the booking day. Only the calendar date of d is kept.
func (w *Wizard) SelectDate(d time.Time) error {
	if n := w.requireStep(StepDateTime, "date"); n != nil {
		return w.reject(n)
	}
	day := civilDay(d)
	if !w.dateBookable(day) {
		return w.reject(w.dateNotice())
	}
	w.draft.Date = day
	w.accept()
	return nil
}

func (w *Wizard) SelectTimeSlot(slotID string) error {
	if n := w.requireStep(StepDateTime, "time slot"); n != nil {
		return w.reject(n)
	}
	s, ok := w.findSlot(slotID)
	if !ok {
		return w.reject(newNotice(NoticeUnknownSlot, "Please select one of the listed time slots."))
	}
	if !s.Available {
		return w.reject(newNotice(NoticeSlotUnavailable, fmt.Sprintf("The %s slot is unavailable. Please choose another time.", s.Label)))
	}
	w.draft.TimeSlot = &s
	w.accept()
	return nil
}

// SetAddress merges patch into the address. Presence is only checked on Next.
func (w *Wizard) SetAddress(patch entities.AddressPatch) error {
	if n := w.requireStep(StepAddress, "address"); n != nil {
		return w.reject(n)
	}
	w.draft.Address = w.draft.Address.Merge(patch)
	w.accept()
	return nil
}

func (w *Wizard) SelectPaymentMethod(m entities.PaymentMethod) error {
	if n := w.requireStep(StepPayment, "payment method"); n != nil {
		return w.reject(n)
	}
	parsed, ok := entities.ParsePaymentMethod(string(m))
	if !ok {
		return w.reject(newNotice(NoticeInvalidPaymentMethod, "Please choose a supported payment method."))
	}
	w.draft.PaymentMethod = parsed
	w.accept()
	return nil
}

// Next advances one step when the current step's guard holds. From Payment
// it confirms the booking.
func (w *Wizard) Next() error {
	if n := w.guard(); n != nil {
		return w.reject(n)
	}
	if w.draft.Step == StepPayment {
		_, err := w.Confirm()
		return err
	}
	next, _ := Transition(w.draft.Step, EventNext)
	w.draft.Step = next
	w.accept()
	return nil
}

func (w *Wizard) Back() error {
	prev, ok := Transition(w.draft.Step, EventBack)
	if !ok {
		if w.draft.Step.Terminal() {
			return w.reject(newNotice(NoticeBackDisabled, "This booking is already confirmed."))
		}
		return w.reject(newNotice(NoticeBackDisabled, "You are already at the first step."))
	}
	w.draft.Step = prev
	w.accept()
	return nil
}

// Confirm prices the draft, assigns a display booking id and moves to
// Confirmation. It is only accepted on the Payment step.
func (w *Wizard) Confirm() (entities.ConfirmedBooking, error) {
	switch w.draft.Step {
	case StepConfirmation:
		return entities.ConfirmedBooking{}, w.reject(alreadyConfirmed())
	case StepPayment:
	default:
		return entities.ConfirmedBooking{}, w.reject(newNotice(NoticeWrongStep, "Bookings can only be confirmed from the payment step."))
	}
	if n := w.guard(); n != nil {
		return entities.ConfirmedBooking{}, w.reject(n)
	}

	b := entities.ConfirmedBooking{
		BookingID:     fmt.Sprintf("%s%06d", BookingIDPrefix, w.rand.IntN(bookingIDDigits)),
		UserID:        w.draft.UserID,
		ServiceID:     w.draft.ServiceID,
		OptionID:      w.draft.Option.ID,
		ProviderID:    w.draft.Provider.ID,
		Date:          w.draft.Date,
		TimeSlot:      w.draft.TimeSlot.Label,
		Address:       w.draft.Address,
		PaymentMethod: w.draft.PaymentMethod,
		TotalPrice:    w.Quote().Total,
		Status:        entities.BookingStatusConfirmed,
		ConfirmedAt:   w.now().UTC(),
	}
	w.draft.Booking = &b
	w.draft.Step = StepConfirmation
	w.accept()
	return b, nil
}

// guard returns the notice that blocks Next on the current step, or nil.
func (w *Wizard) guard() *Notice {
	switch w.draft.Step {
	case StepDetails:
		eligible := w.EligibleProviders()
		if len(eligible) == 0 {
			return newNotice(NoticeNoProviders, "No providers are available for this service right now.")
		}
		if w.draft.Provider == nil {
			return newNotice(NoticeSelectProvider, "Please select a provider to continue.")
		}
		for _, p := range eligible {
			if p.ID == w.draft.Provider.ID {
				return nil
			}
		}
		return newNotice(NoticeProviderUnavailable, "The selected provider is no longer available.")
	case StepDateTime:
		if !w.dateBookable(w.draft.Date) {
			return w.dateNotice()
		}
		if w.draft.TimeSlot == nil {
			return newNotice(NoticeSelectSlot, "Please select a time slot to continue.")
		}
		if s, ok := w.findSlot(w.draft.TimeSlot.ID); !ok || !s.Available {
			return newNotice(NoticeSlotUnavailable, "The selected time slot is unavailable. Please choose another time.")
		}
		return nil
	case StepAddress:
		if missing := w.draft.Address.Missing(); len(missing) > 0 {
			return newNotice(NoticeIncompleteAddress, "Please fill in all required address fields.", missing...)
		}
		return nil
	case StepPayment:
		if _, ok := entities.ParsePaymentMethod(string(w.draft.PaymentMethod)); !ok {
			return newNotice(NoticeInvalidPaymentMethod, "Please choose a supported payment method.")
		}
		return nil
	}
	return alreadyConfirmed()
}

func (w *Wizard) requireStep(owner Step, what string) *Notice {
	if w.draft.Step.Terminal() {
		return alreadyConfirmed()
	}
	if w.draft.Step != owner {
		return newNotice(NoticeWrongStep, fmt.Sprintf("The %s can only be changed on the %s step.", what, owner))
	}
	return nil
}

func (w *Wizard) reject(n *Notice) error {
	w.draft.Notice = n
	return n
}

func (w *Wizard) accept() {
	w.draft.Notice = nil
}

func (w *Wizard) findProvider(id string) (entities.Provider, bool) {
	for _, p := range w.catalog.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Provider{}, false
}

func (w *Wizard) findSlot(id string) (entities.TimeSlot, bool) {
	for _, s := range w.catalog.TimeSlots {
		if s.ID == id {
			return s, true
		}
	}
	return entities.TimeSlot{}, false
}

// dateBookable accepts days from today up to BookingWindowMonths ahead.
func (w *Wizard) dateBookable(day time.Time) bool {
	today := civilDay(w.now())
	last := today.AddDate(0, BookingWindowMonths, 0)
	return !day.Before(today) && !day.After(last)
}

func (w *Wizard) dateNotice() *Notice {
	return newNotice(NoticeDateUnavailable, fmt.Sprintf("Please pick a date between today and %d months ahead.", BookingWindowMonths))
}

func alreadyConfirmed() *Notice {
	return newNotice(NoticeAlreadyConfirmed, "This booking is already confirmed.")
}

// civilDay keeps the calendar date of t, as seen in t's location, at UTC midnight.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
