package translate

import "fmt"

// Error names reported by TranslatorError.Name.
const (
	NameReadDir         = "READ_DIR_ERROR"
	NameFileType        = "READ_FILE_ERROR"
	NameBundle          = "BUNDLE_ERROR"
	NameDefaultLanguage = "DEFAULT_LANGUAGE_ERROR"
)

// Sentinels for errors.Is. They compare equal to any TranslatorError with
// the same Name.
var (
	ErrReadDir         = &TranslatorError{Name: NameReadDir, Description: "translations directory could not be read"}
	ErrFileType        = &TranslatorError{Name: NameFileType, Description: "file type could not be determined"}
	ErrBundle          = &TranslatorError{Name: NameBundle, Description: "resource could not be added to bundle"}
	ErrDefaultLanguage = &TranslatorError{Name: NameDefaultLanguage, Description: "default language has no translations"}
)

// TranslatorError is returned when a Translator cannot be built.
type TranslatorError struct {
	Name        string
	Description string
	Err         error
}

func (e *TranslatorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Name, e.Description, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Description)
}

func (e *TranslatorError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a TranslatorError with the same name.
func (e *TranslatorError) Is(target error) bool {
	t, ok := target.(*TranslatorError)
	if !ok {
		return false
	}
	return t.Name == e.Name
}

func newError(name string, err error, format string, args ...any) *TranslatorError {
	return &TranslatorError{
		Name:        name,
		Description: fmt.Sprintf(format, args...),
		Err:         err,
	}
}
