package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var nonSpace = regexp.MustCompile(`\S`)

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonSpace.MatchString(fl.Field().String())
	})

	// empty is left to omitempty
	_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(models.DateLayout, fl.Field().String())
		return err == nil
	})
}

type addExpenseRequest struct {
	Roommate    string      `json:"roommate" validate:"notblank"`
	Amount      amountField `json:"amount" validate:"notblank"`
	Description string      `json:"description" validate:"notblank,max=500"`
	Date        string      `json:"date" validate:"omitempty,isodate"`
}

type preferencesRequest struct {
	Language string `json:"language" validate:"omitempty,max=35"`
	Theme    string `json:"theme" validate:"omitempty,oneof=light dark"`
}

// amountField accepts 12.5 as well as "12,50".
type amountField string

func (a *amountField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = amountField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = amountField(n.String())
	return nil
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", common.ErrValidation, err.Error())
	}
	return nil
}
