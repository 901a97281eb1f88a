// Package form holds the applicant's in-progress answers and the controller
// that validates and submits them.
//
// State is a value. Every transition returns a new State and leaves its
// receiver untouched, so a State handed to a renderer never changes under it.
package form

import (
	"errors"
	"fmt"

	"media-buyer-intake/pkg/catalog"
	"media-buyer-intake/pkg/models"
)

var ErrUnknownField = errors.New("unknown form field")

// State is one snapshot of the application form.
//
// Key presence invariants:
//   - SelectedSubcategories has an entry only for categories in SelectedVerticalCategories.
//   - SpendRanges is emitted only for networks in SelectedNetworks; deselecting a
//     network drops its entry.
//   - OtherVertical and OtherLeadVertical are empty unless their "Other" option is selected.
type State struct {
	ContactName  string
	ContactEmail string
	TelegramID   string
	SkypeID      string

	SelectedVerticalCategories []string
	SelectedSubcategories      map[string][]string
	OtherVertical              string

	SelectedLeadVerticals []string
	OtherLeadVertical     string

	SelectedNetworks []string
	SpendRanges      map[string]string
	OtherPlatform    string

	MonthlySpend string
	AverageRoas  string
	TeamSize     string
	ProfitShare  string
}

// Has reports whether v is in the ordered set.
func Has(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// toggle returns a new slice with v added at the end or removed, and whether v is now present.
func toggle(set []string, v string) ([]string, bool) {
	out := make([]string, 0, len(set)+1)
	removed := false
	for _, s := range set {
		if s == v {
			removed = true
			continue
		}
		out = append(out, s)
	}
	if removed {
		return out, false
	}
	return append(out, v), true
}

func (s State) clone() State {
	out := s
	out.SelectedVerticalCategories = append([]string(nil), s.SelectedVerticalCategories...)
	out.SelectedLeadVerticals = append([]string(nil), s.SelectedLeadVerticals...)
	out.SelectedNetworks = append([]string(nil), s.SelectedNetworks...)

	out.SelectedSubcategories = make(map[string][]string, len(s.SelectedSubcategories))
	for k, v := range s.SelectedSubcategories {
		out.SelectedSubcategories[k] = append([]string{}, v...)
	}
	out.SpendRanges = make(map[string]string, len(s.SpendRanges))
	for k, v := range s.SpendRanges {
		out.SpendRanges[k] = v
	}
	return out
}

// ToggleVerticalCategory flips name in the selected categories. Removing a
// category drops its subcategories, and removing "Other" clears OtherVertical.
func (s State) ToggleVerticalCategory(name string) State {
	out := s.clone()
	var selected bool
	out.SelectedVerticalCategories, selected = toggle(out.SelectedVerticalCategories, name)
	if !selected {
		delete(out.SelectedSubcategories, name)
		if name == catalog.Other {
			out.OtherVertical = ""
		}
	}
	return out
}

// ToggleSubcategory flips sub within category. A category that is not
// selected is left alone; a selected one without an entry starts empty.
func (s State) ToggleSubcategory(category, sub string) State {
	if !Has(s.SelectedVerticalCategories, category) {
		return s
	}
	out := s.clone()
	out.SelectedSubcategories[category], _ = toggle(out.SelectedSubcategories[category], sub)
	return out
}

// ToggleLeadVertical flips name in the selected lead verticals.
func (s State) ToggleLeadVertical(name string) State {
	out := s.clone()
	var selected bool
	out.SelectedLeadVerticals, selected = toggle(out.SelectedLeadVerticals, name)
	if !selected && name == catalog.Other {
		out.OtherLeadVertical = ""
	}
	return out
}

// ToggleNetwork flips name in the selected networks and drops its spend range on removal.
func (s State) ToggleNetwork(name string) State {
	out := s.clone()
	var selected bool
	out.SelectedNetworks, selected = toggle(out.SelectedNetworks, name)
	if !selected {
		delete(out.SpendRanges, name)
	}
	return out
}

// SetSpendRange records the spend range for network whether or not it is selected.
func (s State) SetSpendRange(network, rng string) State {
	out := s.clone()
	out.SpendRanges[network] = rng
	return out
}

var fieldSetters = map[string]func(*State, string){
	"contactName":       func(s *State, v string) { s.ContactName = v },
	"contactEmail":      func(s *State, v string) { s.ContactEmail = v },
	"telegramId":        func(s *State, v string) { s.TelegramID = v },
	"skypeId":           func(s *State, v string) { s.SkypeID = v },
	"otherVertical":     func(s *State, v string) { s.OtherVertical = v },
	"otherLeadVertical": func(s *State, v string) { s.OtherLeadVertical = v },
	"otherPlatform":     func(s *State, v string) { s.OtherPlatform = v },
	"monthlySpend":      func(s *State, v string) { s.MonthlySpend = v },
	"averageRoas":       func(s *State, v string) { s.AverageRoas = v },
	"teamSize":          func(s *State, v string) { s.TeamSize = v },
	"profitShare":       func(s *State, v string) { s.ProfitShare = v },
}

// SetField sets a single-value field by its payload name.
func (s State) SetField(name, value string) (State, error) {
	set, ok := fieldSetters[name]
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	out := s.clone()
	set(&out, value)
	return out, nil
}

// Payload converts the state into the body posted to the submission endpoint.
// Lists and maps are never nil so they encode as [] and {}.
func (s State) Payload() models.FormData {
	c := s.clone()

	subcategories := make(map[string][]string, len(c.SelectedSubcategories))
	for _, category := range c.SelectedVerticalCategories {
		if subs, ok := c.SelectedSubcategories[category]; ok {
			subcategories[category] = subs
		}
	}
	spendRanges := make(map[string]string, len(c.SelectedNetworks))
	for _, network := range c.SelectedNetworks {
		if rng, ok := c.SpendRanges[network]; ok {
			spendRanges[network] = rng
		}
	}

	return models.FormData{
		ContactName:                c.ContactName,
		ContactEmail:               c.ContactEmail,
		TelegramID:                 c.TelegramID,
		SkypeID:                    c.SkypeID,
		SelectedVerticalCategories: nonNil(c.SelectedVerticalCategories),
		SelectedSubcategories:      subcategories,
		OtherVertical:              c.OtherVertical,
		SelectedLeadVerticals:      nonNil(c.SelectedLeadVerticals),
		OtherLeadVertical:          c.OtherLeadVertical,
		SelectedNetworks:           nonNil(c.SelectedNetworks),
		SpendRanges:                spendRanges,
		OtherPlatform:              c.OtherPlatform,
		MonthlySpend:               c.MonthlySpend,
		AverageRoas:                c.AverageRoas,
		TeamSize:                   c.TeamSize,
		ProfitShare:                c.ProfitShare,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
