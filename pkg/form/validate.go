package form

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"media-buyer-intake/pkg/catalog"
)

// FieldErrors flags each required field that is missing. All flags are
// computed on every validation; nothing short-circuits.
type FieldErrors struct {
	LeadVerticals bool
	MonthlySpend  bool
	AverageRoas   bool
	TeamSize      bool
	ProfitShare   bool
}

// Any reports whether at least one field is flagged.
func (e FieldErrors) Any() bool {
	return e.LeadVerticals || e.MonthlySpend || e.AverageRoas || e.TeamSize || e.ProfitShare
}

// Fields returns the payload names of the flagged fields in form order.
func (e FieldErrors) Fields() []string {
	var fields []string
	if e.LeadVerticals {
		fields = append(fields, "selectedLeadVerticals")
	}
	if e.MonthlySpend {
		fields = append(fields, "monthlySpend")
	}
	if e.AverageRoas {
		fields = append(fields, "averageRoas")
	}
	if e.TeamSize {
		fields = append(fields, "teamSize")
	}
	if e.ProfitShare {
		fields = append(fields, "profitShare")
	}
	return fields
}

type requiredChoices struct {
	LeadGeneration bool
	LeadVerticals  []string
	MonthlySpend   string `validate:"required"`
	AverageRoas    string `validate:"required"`
	TeamSize       string `validate:"required"`
	ProfitShare    string `validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(leadVerticalsRule, requiredChoices{})
	return v
}

// Lead verticals are only required once Lead Generation is picked.
func leadVerticalsRule(sl validator.StructLevel) {
	rc := sl.Current().Interface().(requiredChoices)
	if rc.LeadGeneration && len(rc.LeadVerticals) == 0 {
		sl.ReportError(rc.LeadVerticals, "selectedLeadVerticals", "LeadVerticals", "required_with_lead_generation", "")
	}
}

// Validate checks the required fields of s.
func Validate(s State) FieldErrors {
	rc := requiredChoices{
		LeadGeneration: Has(s.SelectedVerticalCategories, catalog.LeadGeneration),
		LeadVerticals:  s.SelectedLeadVerticals,
		MonthlySpend:   s.MonthlySpend,
		AverageRoas:    s.AverageRoas,
		TeamSize:       s.TeamSize,
		ProfitShare:    s.ProfitShare,
	}

	var result FieldErrors
	var verrs validator.ValidationErrors
	if err := validate.Struct(rc); !errors.As(err, &verrs) {
		return result
	}
	for _, fe := range verrs {
		switch fe.StructField() {
		case "LeadVerticals":
			result.LeadVerticals = true
		case "MonthlySpend":
			result.MonthlySpend = true
		case "AverageRoas":
			result.AverageRoas = true
		case "TeamSize":
			result.TeamSize = true
		case "ProfitShare":
			result.ProfitShare = true
		}
	}
	return result
}
