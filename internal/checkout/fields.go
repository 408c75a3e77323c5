package checkout

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	pkgerrors "github.com/emberworks/forgefront-backend/pkg/errors"
)

// Fields are the six required checkout inputs. The core only checks presence;
// format rules (email shape, card validity) belong to the form layer.
type Fields struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	ZipCode      string `json:"zip_code" validate:"required"`
	PaymentToken string `json:"payment_token" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Validate reports one error per empty field, all collected into a single
// validation error with per-field details.
func (f Fields) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "checkout fields invalid")
	}

	details := map[string]string{}
	var collected []error
	for _, fieldErr := range errs {
		details[fieldErr.Field()] = "is required"
		collected = append(collected, fmt.Errorf("%s is required", fieldErr.Field()))
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, multierr.Combine(collected...), "checkout fields incomplete").
		WithDetails(details)
}
