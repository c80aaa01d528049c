package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// PhoneMessage is reported instead of the generic pattern message
const PhoneMessage = "Phone number must be exactly 10 digits."

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

	setupOnce sync.Once
)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("email", validateEmail)
	v.RegisterValidation("phone10", validatePhone)
	v.RegisterTagNameFunc(formFieldName)
}

// Setup installs the custom validators into gin's binding engine
func Setup() {
	setupOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterValidators(v)
		}
	})
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	return emailRegex.MatchString(email)
}

// validatePhone checks for exactly ten digits
func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// formFieldName reports fields by their form name rather than the Go name
func formFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

// Result is the outcome of a schema check: valid, or a list of messages
type Result struct {
	Errors []string
}

// Valid reports whether no constraint was violated
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Bind decodes the request into obj and checks every constraint.
// Constraint violations come back in the Result; a non-nil error means the
// body itself could not be read.
func Bind(c *gin.Context, obj any) (Result, error) {
	Setup()

	err := c.ShouldBind(obj)
	if err == nil {
		return Result{}, nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return Result{Errors: formatErrors(validationErrors, c.Request.PostForm)}, nil
	}

	return Result{}, err
}

// formatErrors turns validator errors into one message per violated field,
// in schema order. A required field sent blank reads differently from one
// left out of the form.
func formatErrors(errs validator.ValidationErrors, form url.Values) []string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		_, sent := form[e.Field()]
		messages = append(messages, message(e, sent))
	}
	return messages
}

func message(e validator.FieldError, sent bool) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		if sent {
			return fmt.Sprintf("%q is not allowed to be empty", field)
		}
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "phone10":
		return PhoneMessage
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, e.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, e.Param())
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
