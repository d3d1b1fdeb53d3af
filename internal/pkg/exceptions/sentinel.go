package exceptions

import (
	"errors"
	"fmt"
)

// ErrDuplicateDocument is wrapped by repositories when a unique index rejects
// an insert, so callers can retry with a fresh key.
var ErrDuplicateDocument = errors.New("duplicate document")

// ErrDuplicatePhoneNumber narrows ErrDuplicateDocument to the phone number
// index. errors.Is matches both.
var ErrDuplicatePhoneNumber = fmt.Errorf("%w: phone number", ErrDuplicateDocument)
