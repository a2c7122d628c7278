package dtos

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// IngestFromURLRequest defines the payload for ingesting a remote DICOM file.
type IngestFromURLRequest struct {
	URL string `json:"url" validate:"required"`
}

// Validate checks that the request carries a well-formed URL.
func (r IngestFromURLRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required, is.URL),
	)
}
