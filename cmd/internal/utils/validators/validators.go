package validators

import (
	"regexp"
	"unicode"

	"contractregistry/cmd/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

var specialRegex = regexp.MustCompile(`[\\^$*.\[\]{}()?"!@#%&/\\,><':;|_~` + "`" + `=+\-]`)

/*
 * Domain enums. The canonical labels carry spaces and accents, so the
 * built-in `oneof` tag is a poor fit; each enum gets its own tag instead.
 */

func IsModality(fl validator.FieldLevel) bool {
	return entity.IsValidModality(fl.Field().String())
}

func IsContractStatus(fl validator.FieldLevel) bool {
	return entity.IsValidStatus(fl.Field().String())
}

func IsAmendmentType(fl validator.FieldLevel) bool {
	return entity.IsValidAmendmentType(fl.Field().String())
}

func IsEndorsementType(fl validator.FieldLevel) bool {
	return entity.IsValidEndorsementType(fl.Field().String())
}

func IsDocumentType(fl validator.FieldLevel) bool {
	return entity.IsValidDocumentType(fl.Field().String())
}

/*
 * Password composition rules for signup.
 */

func HasUpper(fl validator.FieldLevel) bool {
	return hasRune(fl, unicode.IsUpper)
}

func HasLower(fl validator.FieldLevel) bool {
	return hasRune(fl, unicode.IsLower)
}

func HasDigit(fl validator.FieldLevel) bool {
	return hasRune(fl, unicode.IsDigit)
}

func HasSpecial(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return specialRegex.MatchString(val)
}

func hasRune(fl validator.FieldLevel, check func(rune) bool) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range val {
		if check(ch) {
			return true
		}
	}
	return false
}
