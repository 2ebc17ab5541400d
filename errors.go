package utfchar

import "strconv"

// Kind categorizes a decode or validation failure
type Kind uint8

const (
	KindContinuationByte     Kind = iota + 1 // lead position holds a continuation byte
	KindTooLongSequence                      // lead byte declares more than 4 bytes
	KindNotContinuationByte                  // expected a continuation byte at Index
	KindOverlong                             // sequence is longer than needed
	KindTooShort                             // Need more bytes to complete the sequence
	KindTooHigh                              // value above MaxRune
	KindSurrogateRange                       // value in 0xD800..0xDFFF
	KindEmpty                                // no input at all
	KindFirstLowSurrogate                    // UTF-16 starts with a trailing surrogate
	KindMissingSecond                        // high surrogate without its partner
	KindSecondNotLowSurrogate                // high surrogate followed by a non-low unit
	KindSuperfluousSecond                    // single-unit codepoint with a second unit
	KindSeveralCodePoints                    // text holds more than one codepoint
)

var kindNames = [...]string{
	KindContinuationByte:      "continuation byte in lead position",
	KindTooLongSequence:       "sequence too long",
	KindNotContinuationByte:   "not a continuation byte",
	KindOverlong:              "overlong sequence",
	KindTooShort:              "too short",
	KindTooHigh:               "codepoint too high",
	KindSurrogateRange:        "codepoint in surrogate range",
	KindEmpty:                 "empty input",
	KindFirstLowSurrogate:     "first unit is a trailing surrogate",
	KindMissingSecond:         "missing second unit",
	KindSecondNotLowSurrogate: "second unit is not a low surrogate",
	KindSuperfluousSecond:     "superfluous second unit",
	KindSeveralCodePoints:     "more than one codepoint",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// LeadByte reports whether the first byte alone was unusable
func (k Kind) LeadByte() bool {
	return k == KindContinuationByte || k == KindTooLongSequence
}

// Sequence reports whether a multi-byte UTF-8 sequence was malformed
func (k Kind) Sequence() bool {
	return k == KindNotContinuationByte || k == KindOverlong || k == KindTooShort
}

// Surrogate reports whether UTF-16 surrogate pairing failed
func (k Kind) Surrogate() bool {
	switch k {
	case KindFirstLowSurrogate, KindMissingSecond, KindSecondNotLowSurrogate, KindSuperfluousSecond:
		return true
	}
	return false
}

// ScalarRange reports whether a decoded value was not a Unicode scalar value
func (k Kind) ScalarRange() bool {
	return k == KindTooHigh || k == KindSurrogateRange
}

// Text reports whether a string could not be read as exactly one codepoint
func (k Kind) Text() bool {
	return k == KindEmpty || k == KindSeveralCodePoints
}

// Error is returned by every fallible operation in this package.
//
// Index is set for KindNotContinuationByte and holds the position of the
// offending byte. Need is set for KindTooShort and holds how many more
// bytes must be appended before decoding can succeed.
//
// Errors are preallocated, so a failing decode does not allocate. Treat
// returned errors as read-only.
type Error struct {
	Kind  Kind
	Index int
	Need  int
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := "utfchar: " + e.Kind.String()
	switch e.Kind {
	case KindNotContinuationByte:
		msg += " at index " + strconv.Itoa(e.Index)
	case KindTooShort:
		msg += ", need " + strconv.Itoa(e.Need) + " more"
	}
	return msg
}

// Is reports whether target has the same Kind, ignoring Index and Need
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

var (
	ErrContinuationByte      = &Error{Kind: KindContinuationByte}
	ErrTooLongSequence       = &Error{Kind: KindTooLongSequence}
	ErrNotContinuationByte   = &Error{Kind: KindNotContinuationByte}
	ErrOverlong              = &Error{Kind: KindOverlong}
	ErrTooShort              = &Error{Kind: KindTooShort}
	ErrTooHigh               = &Error{Kind: KindTooHigh}
	ErrSurrogateRange        = &Error{Kind: KindSurrogateRange}
	ErrEmpty                 = &Error{Kind: KindEmpty}
	ErrFirstLowSurrogate     = &Error{Kind: KindFirstLowSurrogate}
	ErrMissingSecond         = &Error{Kind: KindMissingSecond}
	ErrSecondNotLowSurrogate = &Error{Kind: KindSecondNotLowSurrogate}
	ErrSuperfluousSecond     = &Error{Kind: KindSuperfluousSecond}
	ErrSeveralCodePoints     = &Error{Kind: KindSeveralCodePoints}
)

// Parameterised errors, indexed by Need and Index respectively.
var (
	tooShortErrors = [...]*Error{
		1: {Kind: KindTooShort, Need: 1},
		2: {Kind: KindTooShort, Need: 2},
		3: {Kind: KindTooShort, Need: 3},
		4: {Kind: KindTooShort, Need: 4},
	}
	notContinuationErrors = [...]*Error{
		1: {Kind: KindNotContinuationByte, Index: 1},
		2: {Kind: KindNotContinuationByte, Index: 2},
		3: {Kind: KindNotContinuationByte, Index: 3},
	}
)

func errTooShort(need int) error {
	return tooShortErrors[need]
}

func errNotContinuation(index int) error {
	return notContinuationErrors[index]
}
