package form

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-buyer-intake/pkg/catalog"
)

func TestToggleVerticalCategory_RemovesSubcategories(t *testing.T) {
	s := State{}.
		ToggleVerticalCategory("Education").
		ToggleSubcategory("Education", "Online Courses")
	require.Equal(t, []string{"Online Courses"}, s.SelectedSubcategories["Education"])

	s = s.ToggleVerticalCategory("Education")

	assert.Empty(t, s.SelectedVerticalCategories)
	_, ok := s.SelectedSubcategories["Education"]
	assert.False(t, ok, "deselected category must not keep a subcategory entry")
}

func TestToggleVerticalCategory_PreservesInsertionOrder(t *testing.T) {
	s := State{}.
		ToggleVerticalCategory("Software & Apps").
		ToggleVerticalCategory("Education").
		ToggleVerticalCategory(catalog.LeadGeneration).
		ToggleVerticalCategory("Education")

	assert.Equal(t, []string{"Software & Apps", catalog.LeadGeneration}, s.SelectedVerticalCategories)
}

func TestToggleVerticalCategory_OtherClearsFreeText(t *testing.T) {
	s := State{}.ToggleVerticalCategory(catalog.Other)
	s, err := s.SetField("otherVertical", "Pet supplies")
	require.NoError(t, err)
	require.Equal(t, "Pet supplies", s.OtherVertical)

	s = s.ToggleVerticalCategory(catalog.Other)
	assert.Equal(t, "", s.OtherVertical)
}

func TestToggleSubcategory_UnselectedCategoryIsNoop(t *testing.T) {
	s := State{}.ToggleSubcategory("Education", "Online Courses")

	assert.Empty(t, s.SelectedSubcategories)
}

func TestToggleSubcategory_FlipsMembership(t *testing.T) {
	s := State{}.
		ToggleVerticalCategory("Education").
		ToggleSubcategory("Education", "Online Courses").
		ToggleSubcategory("Education", "Coaching Programs").
		ToggleSubcategory("Education", "Online Courses")

	assert.Equal(t, []string{"Coaching Programs"}, s.SelectedSubcategories["Education"])
}

func TestToggleLeadVertical_OtherClearsFreeText(t *testing.T) {
	s := State{}.ToggleLeadVertical("Solar").ToggleLeadVertical(catalog.Other)
	s, err := s.SetField("otherLeadVertical", "Pest control")
	require.NoError(t, err)

	s = s.ToggleLeadVertical("Solar")
	assert.Equal(t, "Pest control", s.OtherLeadVertical, "removing another option keeps the free text")

	s = s.ToggleLeadVertical(catalog.Other)
	assert.Equal(t, "", s.OtherLeadVertical)
	assert.Empty(t, s.SelectedLeadVerticals)
}

func TestToggleNetwork_DropsSpendRange(t *testing.T) {
	s := State{}.
		ToggleNetwork("Google Search Ads").
		SetSpendRange("Google Search Ads", "10k-50k")
	require.Equal(t, "10k-50k", s.SpendRanges["Google Search Ads"])

	s = s.ToggleNetwork("Google Search Ads")
	_, ok := s.SpendRanges["Google Search Ads"]
	assert.False(t, ok)
}

func TestSetSpendRange_UnselectedNetworkIsExcludedFromPayload(t *testing.T) {
	s := State{}.
		ToggleNetwork("TikTok Ads").
		SetSpendRange("TikTok Ads", "0-10k").
		SetSpendRange("YouTube Ads", "500k+")

	assert.Equal(t, "500k+", s.SpendRanges["YouTube Ads"])
	assert.Equal(t, map[string]string{"TikTok Ads": "0-10k"}, s.Payload().SpendRanges)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	before := State{}.
		ToggleVerticalCategory("Education").
		ToggleSubcategory("Education", "Online Courses").
		ToggleNetwork("YouTube Ads").
		SetSpendRange("YouTube Ads", "0-10k")
	snapshot := before.clone()

	_ = before.ToggleSubcategory("Education", "Language Learning")
	_ = before.ToggleVerticalCategory("Education")
	_ = before.ToggleNetwork("YouTube Ads")
	_ = before.SetSpendRange("YouTube Ads", "500k+")
	_, _ = before.SetField("contactName", "Jane")

	if diff := cmp.Diff(snapshot, before); diff != "" {
		t.Fatalf("receiver changed (-want +got):\n%s", diff)
	}
}

func TestSetField(t *testing.T) {
	s, err := State{}.SetField("telegramId", "@jane")
	require.NoError(t, err)
	assert.Equal(t, "@jane", s.TelegramID)

	s, err = s.SetField("teamSize", "solo")
	require.NoError(t, err)
	assert.Equal(t, "solo", s.TeamSize)

	_, err = s.SetField("favouriteColour", "red")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestPayload_EncodesEmptyCollections(t *testing.T) {
	body, err := json.Marshal(State{}.Payload())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, []any{}, decoded["selectedVerticalCategories"])
	assert.Equal(t, []any{}, decoded["selectedLeadVerticals"])
	assert.Equal(t, []any{}, decoded["selectedNetworks"])
	assert.Equal(t, map[string]any{}, decoded["selectedSubcategories"])
	assert.Equal(t, map[string]any{}, decoded["spendRanges"])
	assert.Len(t, decoded, 16)
}
