// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package validation provides struct validation using go-playground/validator v10.
// It keeps a single validator instance and registers the domain validators used
// by request DTOs and catalog records.
//
// Custom tags:
//   - cuisine: empty or one of japanese, chinese, western, various
//   - dish: empty or a dish id from the compatibility matrix
//   - referrer: diagnosis, browse or recommendation
//
// Field names in errors use the json tag, so messages line up with request bodies.
//
// Example usage:
//
//	type RecommendRequest struct {
//	    Cuisine string `json:"cuisine" validate:"cuisine"`
//	    Count   int    `json:"count" validate:"omitempty,min=1,max=50"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    for _, fe := range err.Fields {
//	        log.Debug().Str("field", fe.Field).Str("tag", fe.Tag).Msg("rejected")
//	    }
//	    apiErr := err.ToAPIError() // Code is always VALIDATION_ERROR
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/sakefinder/internal/pairing"
)

// Code is the API error code for every validation failure.
const Code = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed field. Field is the json (or koanf) name.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Value   interface{}
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// RequestValidationError collects every failed field of one struct.
type RequestValidationError struct {
	Fields []FieldError
}

// Error joins the messages, each prefixed by its field when there are several.
func (ve *RequestValidationError) Error() string {
	switch len(ve.Fields) {
	case 0:
		return "Validation failed"
	case 1:
		return ve.Fields[0].Message
	}
	parts := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// APIError mirrors models.APIError without importing it.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts the failures to the VALIDATION_ERROR response shape.
// A single failure reports field, tag and value; several are listed under "fields".
func (ve *RequestValidationError) ToAPIError() *APIError {
	out := &APIError{Code: Code, Message: ve.Error()}

	switch len(ve.Fields) {
	case 0:
	case 1:
		fe := ve.Fields[0]
		out.Details = map[string]interface{}{"field": fe.Field, "tag": fe.Tag, "value": fe.Value}
	default:
		fields := make([]map[string]interface{}, len(ve.Fields))
		for i, fe := range ve.Fields {
			fields[i] = map[string]interface{}{"field": fe.Field, "tag": fe.Tag, "message": fe.Message}
		}
		out.Details = map[string]interface{}{"fields": fields}
	}
	return out
}

// GetValidator returns the shared validator, building it on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)

		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("cuisine", func(fl validator.FieldLevel) bool {
			_, err := pairing.ParseCuisine(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("dish", func(fl validator.FieldLevel) bool {
			id := fl.Field().String()
			_, ok := pairing.LookupDish(id)
			return id == "" || ok
		})
		_ = validate.RegisterValidation("referrer", func(fl validator.FieldLevel) bool {
			_, ok := referrers[fl.Field().String()]
			return ok
		})
	})

	return validate
}

var referrers = map[string]struct{}{"diagnosis": {}, "browse": {}, "recommendation": {}}

// fieldName prefers the json tag, then koanf, then the Go name.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "koanf"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}
	return fld.Name
}

// ValidateStruct validates s with the shared validator. Returns nil on success.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{Fields: []FieldError{{Field: "unknown", Tag: "unknown", Message: err.Error()}}}
	}

	out := &RequestValidationError{Fields: make([]FieldError, len(fieldErrs))}
	for i, fe := range fieldErrs {
		out.Fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: message(fe),
		}
	}
	return out
}

// message renders fe as a sentence about the json field name.
func message(fe validator.FieldError) string {
	f, p := fe.Field(), fe.Param()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return f + " is required"
	case "cuisine":
		return f + " must be one of: japanese, chinese, western, various"
	case "dish":
		return f + " must be a known dish identifier"
	case "referrer":
		return f + " must be one of: diagnosis, browse, recommendation"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", f, p)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s%s", f, p, unit)
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s%s", f, p, unit)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", f, p)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", f, p)
	default:
		return fmt.Sprintf("%s failed %s validation", f, fe.Tag())
	}
}
