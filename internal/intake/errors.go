package intake

import "net/http"

// The intake rejections carry the exact messages shown to the user; the
// API surfaces Error() verbatim in the error field of the response.

// ErrMissingPosition indicates the position field was empty or absent.
type ErrMissingPosition struct{}

func (e *ErrMissingPosition) Error() string {
	return "Position is required"
}

// ErrMissingFile indicates no CV file was attached.
type ErrMissingFile struct{}

func (e *ErrMissingFile) Error() string {
	return "CV file is required"
}

// ErrUnsupportedType indicates the declared MIME type is not allowed.
type ErrUnsupportedType struct {
	ContentType string
}

func (e *ErrUnsupportedType) Error() string {
	return "Only PDF, PNG, or JPG files are allowed"
}

// ErrFileTooLarge indicates the file exceeds the size ceiling.
type ErrFileTooLarge struct {
	Size int64
}

func (e *ErrFileTooLarge) Error() string {
	return "File size must not exceed 5MB"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMissingPosition, *ErrMissingFile, *ErrUnsupportedType, *ErrFileTooLarge:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
