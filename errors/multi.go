package errors

import "strings"

// Append combines given errors into a single one. Nil errors are ignored.
// If all provided errors are nil (or none is given), nil is returned.
// Errors created by this function can be tested with the Is function.
// They match if any of the combined errors matches.
func Append(errs ...error) error {
	var flat multiError
	for _, err := range errs {
		switch e := err.(type) {
		case nil:
			// Ignore.
		case *multiError:
			flat = append(flat, *e...)
		default:
			flat = append(flat, err)
		}
	}
	if len(flat) == 0 {
		return nil
	}
	return &flat
}

type multiError []error

func (e *multiError) Error() string {
	switch errs := *e; len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Error()
	default:
		descs := make([]string, len(errs))
		for i, err := range errs {
			descs[i] = err.Error()
		}
		return strings.Join(descs, "; ")
	}
}

// ABCICode returns the code of the first combined error. All combined
// errors are equally important and which one is used is an arbitrary
// choice.
func (e *multiError) ABCICode() uint32 {
	for _, err := range *e {
		return abciCode(err)
	}
	return successABCICode
}

func (e *multiError) contains(kind *Error) bool {
	for _, err := range *e {
		if kind.Is(err) {
			return true
		}
	}
	return false
}
