package helper

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct runs validator.v10 tags and maps failures into the
// field→messages shape JsonValidationError expects.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"_": {err.Error()}}
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fe.Tag())
	}
	return out
}
