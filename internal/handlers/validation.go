package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

type validationRule struct {
	tag string
	fn  validator.Func
}

// enumRules back the binding tags of the ledger enums.
var enumRules = []validationRule{
	{"direction", func(fl validator.FieldLevel) bool {
		return domain.Direction(fl.Field().String()).IsValid()
	}},
	{"income_kind", func(fl validator.FieldLevel) bool {
		return domain.IncomeKind(fl.Field().String()).IsValid()
	}},
	{"expense_kind", func(fl validator.FieldLevel) bool {
		return domain.ExpenseKind(fl.Field().String()).IsValid()
	}},
	{"fund_source", func(fl validator.FieldLevel) bool {
		return domain.FundSource(fl.Field().String()).IsValid()
	}},
}

// registerValidators adds the ledger enum rules to gin's validator engine and
// reports field names by their json or form tag. It panics when a rule cannot
// be registered, so a broken tag fails at startup rather than on first bind.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("handlers: gin binding engine is not a go-playground validator")
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})

		if err := registerRules(v, enumRules); err != nil {
			panic(err)
		}
	})
}

func registerRules(v *validator.Validate, rules []validationRule) error {
	for _, rule := range rules {
		if err := v.RegisterValidation(rule.tag, rule.fn); err != nil {
			return fmt.Errorf("failed to register validation %q: %w", rule.tag, err)
		}
	}
	return nil
}
