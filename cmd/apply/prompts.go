package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"media-buyer-intake/pkg/catalog"
	"media-buyer-intake/pkg/form"
)

const skipLabel = "Skip for now"

var errSubmissionFailed = errors.New("application was not submitted")

type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

type applicant struct {
	ask  askFunc
	cat  *catalog.Catalog
	ctrl *form.Controller
}

type contactField struct {
	name     string
	message  string
	required bool
}

var contactFields = []contactField{
	{name: "contactName", message: "Full name", required: true},
	{name: "contactEmail", message: "Email", required: true},
	{name: "telegramId", message: "Telegram username"},
	{name: "skypeId", message: "Skype ID"},
}

type choiceField struct {
	name    string
	message string
	options func(*catalog.Catalog) []catalog.Option
}

var choiceFields = []choiceField{
	{name: "monthlySpend", message: "Total monthly ad spend", options: func(c *catalog.Catalog) []catalog.Option { return c.MonthlySpend }},
	{name: "averageRoas", message: "Average ROAS", options: func(c *catalog.Catalog) []catalog.Option { return c.AverageRoas }},
	{name: "teamSize", message: "Team size", options: func(c *catalog.Catalog) []catalog.Option { return c.TeamSize }},
	{name: "profitShare", message: "Expected profit share", options: func(c *catalog.Catalog) []catalog.Option { return c.ProfitShare }},
}

func (a *applicant) run(ctx context.Context) error {
	if err := a.askContact(); err != nil {
		return err
	}
	if err := a.askVerticals(); err != nil {
		return err
	}
	if err := a.askLeadVerticals(); err != nil {
		return err
	}
	if err := a.askNetworks(); err != nil {
		return err
	}
	for _, f := range choiceFields {
		if err := a.askChoice(f); err != nil {
			return err
		}
	}

	for {
		err := a.ctrl.Submit(ctx)
		if errors.Is(err, form.ErrInvalidForm) {
			if err := a.askMissing(a.ctrl.View().Errors); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		if a.ctrl.View().Status.Phase == form.PhaseSuccess {
			return nil
		}
		retry := false
		if err := a.ask(&survey.Confirm{Message: "Try submitting again?", Default: true}, &retry); err != nil {
			return err
		}
		if !retry {
			return errSubmissionFailed
		}
	}
}

func (a *applicant) askContact() error {
	state := a.ctrl.View().State
	current := map[string]string{
		"contactName":  state.ContactName,
		"contactEmail": state.ContactEmail,
		"telegramId":   state.TelegramID,
		"skypeId":      state.SkypeID,
	}
	for _, f := range contactFields {
		var value string
		var opts []survey.AskOpt
		if f.required {
			opts = append(opts, survey.WithValidator(survey.Required))
		}
		if err := a.ask(&survey.Input{Message: f.message, Default: current[f.name]}, &value, opts...); err != nil {
			return err
		}
		if err := a.ctrl.SetField(f.name, value); err != nil {
			return err
		}
	}
	return nil
}

func (a *applicant) askVerticals() error {
	var chosen []string
	if err := a.ask(&survey.MultiSelect{
		Message: "Which verticals do you run?",
		Options: a.cat.CategoryNames(),
		Default: a.ctrl.View().State.SelectedVerticalCategories,
	}, &chosen); err != nil {
		return err
	}
	syncSet(a.ctrl.View().State.SelectedVerticalCategories, chosen, a.ctrl.ToggleVerticalCategory)

	for _, category := range a.ctrl.View().State.SelectedVerticalCategories {
		subs := a.cat.Subcategories(category)
		if len(subs) == 0 {
			continue
		}
		var chosenSubs []string
		if err := a.ask(&survey.MultiSelect{
			Message: category + " focus",
			Options: subs,
			Default: a.ctrl.View().State.SelectedSubcategories[category],
		}, &chosenSubs); err != nil {
			return err
		}
		syncSet(a.ctrl.View().State.SelectedSubcategories[category], chosenSubs, func(sub string) {
			a.ctrl.ToggleSubcategory(category, sub)
		})
	}

	if form.Has(a.ctrl.View().State.SelectedVerticalCategories, catalog.Other) {
		return a.askText("otherVertical", "Other vertical", a.ctrl.View().State.OtherVertical)
	}
	return nil
}

func (a *applicant) askLeadVerticals() error {
	var chosen []string
	if err := a.ask(&survey.MultiSelect{
		Message: "Lead generation verticals (required with Lead Generation)",
		Options: a.cat.LeadVerticals,
		Default: a.ctrl.View().State.SelectedLeadVerticals,
	}, &chosen); err != nil {
		return err
	}
	syncSet(a.ctrl.View().State.SelectedLeadVerticals, chosen, a.ctrl.ToggleLeadVertical)

	if form.Has(a.ctrl.View().State.SelectedLeadVerticals, catalog.Other) {
		return a.askText("otherLeadVertical", "Other lead vertical", a.ctrl.View().State.OtherLeadVertical)
	}
	return nil
}

func (a *applicant) askNetworks() error {
	var chosen []string
	if err := a.ask(&survey.MultiSelect{
		Message: "Which ad networks do you buy on?",
		Options: a.cat.Networks,
		Default: a.ctrl.View().State.SelectedNetworks,
	}, &chosen); err != nil {
		return err
	}
	syncSet(a.ctrl.View().State.SelectedNetworks, chosen, a.ctrl.ToggleNetwork)

	if form.Has(a.ctrl.View().State.SelectedNetworks, catalog.Other) {
		if err := a.askText("otherPlatform", "Other platform", a.ctrl.View().State.OtherPlatform); err != nil {
			return err
		}
	}

	for _, network := range a.ctrl.View().State.SelectedNetworks {
		label := network
		if network == catalog.Other && a.ctrl.View().State.OtherPlatform != "" {
			label = a.ctrl.View().State.OtherPlatform
		}
		prompt := &survey.Select{
			Message: label + " monthly spend",
			Options: catalog.Labels(a.cat.SpendRanges),
		}
		if current, ok := a.ctrl.View().State.SpendRanges[network]; ok {
			prompt.Default = catalog.Label(a.cat.SpendRanges, current)
		}
		var picked string
		if err := a.ask(prompt, &picked); err != nil {
			return err
		}
		if value, ok := catalog.ValueOf(a.cat.SpendRanges, picked); ok {
			a.ctrl.SetSpendRange(network, value)
		}
	}
	return nil
}

func (a *applicant) askChoice(f choiceField) error {
	options := f.options(a.cat)
	prompt := &survey.Select{
		Message: f.message,
		Options: append(catalog.Labels(options), skipLabel),
	}
	if current := a.currentChoice(f.name); current != "" {
		prompt.Default = catalog.Label(options, current)
	}

	var picked string
	if err := a.ask(prompt, &picked); err != nil {
		return err
	}
	value, _ := catalog.ValueOf(options, picked)
	return a.ctrl.SetField(f.name, value)
}

func (a *applicant) currentChoice(name string) string {
	s := a.ctrl.View().State
	switch name {
	case "monthlySpend":
		return s.MonthlySpend
	case "averageRoas":
		return s.AverageRoas
	case "teamSize":
		return s.TeamSize
	case "profitShare":
		return s.ProfitShare
	}
	return ""
}

func (a *applicant) askText(name, message, current string) error {
	var value string
	if err := a.ask(&survey.Input{Message: message, Default: current}, &value); err != nil {
		return err
	}
	return a.ctrl.SetField(name, value)
}

// askMissing asks again only the questions whose answers failed validation.
func (a *applicant) askMissing(errs form.FieldErrors) error {
	if errs.LeadVerticals {
		if err := a.askLeadVerticals(); err != nil {
			return err
		}
	}
	for _, name := range errs.Fields() {
		for _, f := range choiceFields {
			if f.name == name {
				if err := a.askChoice(f); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// syncSet toggles the difference between current and wanted so that the
// form's cascade rules run for every removal.
func syncSet(current, wanted []string, toggle func(string)) {
	for _, v := range current {
		if !form.Has(wanted, v) {
			toggle(v)
		}
	}
	for _, v := range wanted {
		if !form.Has(current, v) {
			toggle(v)
		}
	}
}

func describeField(name string) string {
	switch name {
	case "selectedLeadVerticals":
		return "Lead generation verticals"
	}
	for _, f := range choiceFields {
		if f.name == name {
			return f.message
		}
	}
	return fmt.Sprintf("%q", name)
}
