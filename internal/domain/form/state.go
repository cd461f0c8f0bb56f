package form

// State is the visual validity state of a single field.
type State string

const (
	StateNeutral State = "neutral"
	StateValid   State = "valid"
	StateInvalid State = "invalid"
)

// Border colours rendered for each state.
const (
	ColorNeutral = "#e0e0e0"
	ColorValid   = "#4caf50"
	ColorInvalid = "#f44336"
)

// IsValid returns true if the state is one of the defined constants.
func (s State) IsValid() bool {
	switch s {
	case StateNeutral, StateValid, StateInvalid:
		return true
	default:
		return false
	}
}

// Color returns the border colour for the state. Unknown states render as
// neutral.
func (s State) Color() string {
	switch s {
	case StateValid:
		return ColorValid
	case StateInvalid:
		return ColorInvalid
	default:
		return ColorNeutral
	}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// NoticeKind identifies which notice, if any, the form is showing.
type NoticeKind string

const (
	NoticeNone     NoticeKind = ""
	NoticeSuccess  NoticeKind = "success"
	NoticeBlocking NoticeKind = "blocking"
)

// Notice is the user-facing message raised by a submission attempt.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Visible reports whether a notice is currently shown.
func (n Notice) Visible() bool {
	return n.Kind != NoticeNone
}
