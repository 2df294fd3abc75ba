package stubserver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

func newValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				msgs = append(msgs, field+" is required")
			case "email":
				msgs = append(msgs, field+" must be a valid email")
			case "oneof":
				msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
			case "min":
				msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
			default:
				msgs = append(msgs, field+" is invalid")
			}
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return err
}
