package core

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		if err := validate.RegisterValidation("notetitle", noteTitleValidator); err != nil {
			panic(fmt.Sprintf("core: registering notetitle validation: %v", err))
		}
	})
	return validate
}

// noteTitleValidator rejects titles that cannot be used as a file name stem
// inside the notes root.
func noteTitleValidator(fl validator.FieldLevel) bool {
	return ValidTitle(fl.Field().String())
}

// ValidTitle reports whether title can name a note file.
// It does not trim: callers normalize first.
func ValidTitle(title string) bool {
	if title == "" || title == "." || title == ".." {
		return false
	}
	if strings.ContainsRune(title, '/') || strings.ContainsRune(title, os.PathSeparator) {
		return false
	}
	return !strings.ContainsRune(title, 0)
}

// Validate checks a normalized draft. Failures are KindInvalidInput errors
// naming the offending field.
func (d Draft) Validate() error {
	err := getValidator().Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewError("validate", KindInvalidInput, d.Title, "", err)
	}

	fe := verrs[0]
	var reason string
	switch fe.Tag() {
	case "required":
		reason = strings.ToLower(fe.Field()) + " cannot be empty"
	case "notetitle":
		reason = "title cannot contain path separators or be . or .."
	default:
		reason = fe.Error()
	}
	return NewError("validate", KindInvalidInput, d.Title, "", errors.New(reason))
}
