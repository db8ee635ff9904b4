package validate

// Code classifies why a value was rejected.
type Code string

const (
	CodeNullArgument     Code = "NULL_ARGUMENT"
	CodeInvalidString    Code = "INVALID_STRING"
	CodeInvalidDouble    Code = "INVALID_DOUBLE"
	CodeInvalidDate      Code = "INVALID_DATE"
	CodeInvalidWeekday   Code = "INVALID_WEEKDAY"
	CodeNonPositiveValue Code = "NON_POSITIVE_VALUE"
	CodeNegativeValue    Code = "NEGATIVE_VALUE"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeDoesntExist      Code = "DOESNT_EXIST"

	// CodeNone is assigned when the constructor receives an unrecognized code.
	CodeNone Code = "NONE"
)

var messageSuffixes = map[Code]string{
	CodeNullArgument:     " cannot be nil.",
	CodeInvalidString:    " cannot be empty or only whitespace.",
	CodeInvalidDouble:    " is not a valid double.",
	CodeInvalidDate:      " is not a valid date.",
	CodeInvalidWeekday:   " is not a valid weekday.",
	CodeNonPositiveValue: " cannot be zero or negative.",
	CodeNegativeValue:    " cannot be negative.",
	CodeAlreadyExists:    " already exists.",
	CodeDoesntExist:      " does not exist.",
	CodeNone:             ": no error message.",
}

// Error is the failure raised by every constructor and mutator that accepts
// user-controlled data. It carries the human name of the offending field and
// a fixed code; the message is always "<field><code-specific suffix>".
type Error struct {
	Field string
	Code  Code
}

// NewError builds an Error for field with the given code. An unrecognized
// code falls back to CodeNone.
func NewError(field string, code Code) *Error {
	if _, ok := messageSuffixes[code]; !ok || code == CodeNone {
		code = CodeNone
	}
	return &Error{Field: field, Code: code}
}

func (e *Error) Error() string {
	suffix, ok := messageSuffixes[e.Code]
	if !ok {
		suffix = messageSuffixes[CodeNone]
	}
	return e.Field + suffix
}
