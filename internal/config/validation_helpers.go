package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	streamixerrors "github.com/alexisbeaulieu97/streamix/pkg/errors"
)

// convertValidationError normalizes validator errors into Streamix validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		return streamixerrors.NewValidationError(field, describeTag(ve), err)
	}

	return streamixerrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name: "Config.tmdb.base_url" -> "tmdb.base_url".
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "http_url":
		return "must be an absolute http(s) URL"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "language_tag":
		return "must be a language tag such as en-US"
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
