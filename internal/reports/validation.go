package reports

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ReportRequest is the JSON body of a report submission. Coordinates are
// pointers so that an omitted field is distinguishable from zero.
type ReportRequest struct {
	Image     string   `json:"image" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type validation struct {
	validate   *validator.Validate
	translator ut.Translator
}

var (
	validationOnce sync.Once
	shared         *validation
)

func validatorInstance() *validation {
	validationOnce.Do(func() {
		locale := en.New()
		trans, _ := ut.New(locale, locale).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		shared = &validation{validate: v, translator: trans}
	})
	return shared
}

// DecodeSubmission reads, validates, and decodes a report request body.
// Every failure wraps ErrInvalidSubmission.
func DecodeSubmission(body io.Reader) (Submission, error) {
	var req ReportRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return Submission{}, fmt.Errorf("%w: invalid JSON: %w", ErrInvalidSubmission, err)
	}

	if err := validatorInstance().validate.Struct(req); err != nil {
		return Submission{}, fmt.Errorf("%w: %s", ErrInvalidSubmission, validationMessage(err))
	}

	image, err := DecodeImage(req.Image)
	if err != nil {
		return Submission{}, err
	}

	return Submission{
		Image:     image,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}, nil
}

// DecodeImage decodes a base64 image. A data URI prefix such as
// "data:image/png;base64," is accepted and stripped.
func DecodeImage(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if _, payload, ok := strings.Cut(s, ","); ok {
			s = payload
		}
	}

	image, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		image, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: image is not valid base64", ErrInvalidSubmission)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: image is empty", ErrInvalidSubmission)
	}
	return image, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Translate(validatorInstance().translator)
	}
	return err.Error()
}
