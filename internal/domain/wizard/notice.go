package wizard

import "errors"

// Rejection classes. Every *Notice matches exactly one of them with errors.Is.
var (
	ErrValidationFailure    = errors.New("validation failure")
	ErrUnavailableSelection = errors.New("unavailable selection")
)

type NoticeCode string

const (
	NoticeSelectProvider       NoticeCode = "select_provider"
	NoticeNoProviders          NoticeCode = "no_providers"
	NoticeProviderUnavailable  NoticeCode = "provider_unavailable"
	NoticeUnknownProvider      NoticeCode = "unknown_provider"
	NoticeUnknownOption        NoticeCode = "unknown_option"
	NoticeSelectSlot           NoticeCode = "select_slot"
	NoticeSlotUnavailable      NoticeCode = "slot_unavailable"
	NoticeUnknownSlot          NoticeCode = "unknown_slot"
	NoticeDateUnavailable      NoticeCode = "date_unavailable"
	NoticeIncompleteAddress    NoticeCode = "incomplete_address"
	NoticeInvalidPaymentMethod NoticeCode = "invalid_payment_method"
	NoticeWrongStep            NoticeCode = "wrong_step"
	NoticeBackDisabled         NoticeCode = "back_disabled"
	NoticeAlreadyConfirmed     NoticeCode = "already_confirmed"
)

// Notice is a transient, recoverable message shown to the user when an
// operation is rejected. It is stored on the draft and returned as the error.
type Notice struct {
	Code    NoticeCode `json:"code"`
	Message string     `json:"message"`
	Fields  []string   `json:"fields,omitempty"`
}

func newNotice(code NoticeCode, msg string, fields ...string) *Notice {
	return &Notice{Code: code, Message: msg, Fields: fields}
}

func (n *Notice) Error() string {
	return n.Message
}

// Kind returns ErrUnavailableSelection or ErrValidationFailure.
func (n *Notice) Kind() error {
	switch n.Code {
	case NoticeNoProviders, NoticeProviderUnavailable, NoticeSlotUnavailable, NoticeDateUnavailable:
		return ErrUnavailableSelection
	}
	return ErrValidationFailure
}

func (n *Notice) Is(target error) bool {
	return target == n.Kind()
}

// AsNotice unwraps err into a *Notice when it is one.
func AsNotice(err error) (*Notice, bool) {
	var n *Notice
	if errors.As(err, &n) {
		return n, true
	}
	return nil, false
}
