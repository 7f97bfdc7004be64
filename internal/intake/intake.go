// Package intake validates CV analysis submissions.
//
// Validation is metadata-only: the declared MIME type and byte size are
// checked, the file content is never read. This is a deliberate product
// limitation, not an oversight.
package intake

// MaxFileSize is the upload size ceiling in bytes (5 MiB).
const MaxFileSize = 5 * 1024 * 1024

// allowedTypes lists the accepted declared MIME types.
var allowedTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
}

// FileMeta describes an uploaded file without its content.
type FileMeta struct {
	Filename    string
	ContentType string
	Size        int64
}

// Validate checks a submission's position and file metadata. It returns
// nil when the submission is acceptable, or the first applicable rejection
// in the order: missing position, missing file, unsupported type, file too
// large. The check is pure; no side effects, no content inspection.
func Validate(position string, file *FileMeta) error {
	if position == "" {
		return &ErrMissingPosition{}
	}
	if file == nil {
		return &ErrMissingFile{}
	}
	if !allowedTypes[file.ContentType] {
		return &ErrUnsupportedType{ContentType: file.ContentType}
	}
	if file.Size > MaxFileSize {
		return &ErrFileTooLarge{Size: file.Size}
	}
	return nil
}
