package models

// Represents the data structure posted by the media buyer application form
type FormData struct {
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	TelegramID   string `json:"telegramId"`
	SkypeID      string `json:"skypeId"`

	SelectedVerticalCategories []string            `json:"selectedVerticalCategories"`
	SelectedSubcategories      map[string][]string `json:"selectedSubcategories"`
	OtherVertical              string              `json:"otherVertical"`

	SelectedLeadVerticals []string `json:"selectedLeadVerticals"`
	OtherLeadVertical     string   `json:"otherLeadVertical"`

	SelectedNetworks []string          `json:"selectedNetworks"`
	SpendRanges      map[string]string `json:"spendRanges"`
	OtherPlatform    string            `json:"otherPlatform"`

	MonthlySpend string `json:"monthlySpend"`
	AverageRoas  string `json:"averageRoas"`
	TeamSize     string `json:"teamSize"`
	ProfitShare  string `json:"profitShare"`
}

// SubmitResponse is the body returned by the submission endpoint
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
