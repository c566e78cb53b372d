package types

import "github.com/go-playground/validator/v10"

// ProcessPacketsRequest represents the request body for /process-packets.
// FormIDs may be empty, in which case the working set is resolved from the
// document service's recent list.
type ProcessPacketsRequest struct {
	FormIDs []string `json:"form_ids,omitempty" validate:"omitempty,dive,required"`
}

// ListFormsRequest represents the query parameters for listing documents.
type ListFormsRequest struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
}

// Validate validates the ProcessPacketsRequest using the validator.
func (r *ProcessPacketsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ListFormsRequest using the validator.
func (r *ListFormsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
