package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"media-buyer-intake/pkg/catalog"
	"media-buyer-intake/pkg/clients/sheets"
	"media-buyer-intake/pkg/models"
	"media-buyer-intake/pkg/utils"
)

// RowWidth is the number of cells in a submission row (columns A through N)
const RowWidth = 14

// timestampLayout matches ISO-8601 with millisecond precision in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// FormSubmissionService defines the interface for handling form submissions
type FormSubmissionService interface {
	ProcessFormSubmission(ctx context.Context, data models.FormData) error
}

type formSubmissionServiceImpl struct {
	sheetsClient sheets.Client
	logger       *zap.Logger
	now          func() time.Time
}

// NewFormSubmissionService creates a new submission service
func NewFormSubmissionService(sheetsClient sheets.Client, logger *zap.Logger) FormSubmissionService {
	return &formSubmissionServiceImpl{
		sheetsClient: sheetsClient,
		logger:       logger,
		now:          time.Now,
	}
}

// ProcessFormSubmission turns the payload into one row and appends it. Nothing is retried.
func (s *formSubmissionServiceImpl) ProcessFormSubmission(ctx context.Context, data models.FormData) error {
	fingerprint, err := utils.Fingerprint(data)
	if err != nil {
		return err
	}

	s.logger.Info("Received form data",
		zap.String("fingerprint", fingerprint),
		zap.Any("form", data))

	row := BuildRow(data, s.now())

	s.logger.Info("Formatted row data",
		zap.String("fingerprint", fingerprint),
		zap.Strings("row", row))

	if err := s.sheetsClient.AppendRow(ctx, row); err != nil {
		return fmt.Errorf("error saving submission: %w", err)
	}
	return nil
}

// BuildRow flattens a submission into the fixed column order of the intake sheet:
// timestamp, name, email, telegram, skype, verticals, lead verticals, other lead
// vertical, networks, network spend, monthly spend, ROAS, team size, profit share.
func BuildRow(data models.FormData, receivedAt time.Time) []string {
	return []string{
		receivedAt.UTC().Format(timestampLayout),
		data.ContactName,
		data.ContactEmail,
		data.TelegramID,
		data.SkypeID,
		strings.Join(data.SelectedVerticalCategories, ", "),
		strings.Join(data.SelectedLeadVerticals, ", "),
		data.OtherLeadVertical,
		strings.Join(data.SelectedNetworks, ", "),
		networkSpend(data),
		data.MonthlySpend,
		data.AverageRoas,
		data.TeamSize,
		data.ProfitShare,
	}
}

// networkSpend renders "network: range" pairs for the selected networks only.
func networkSpend(data models.FormData) string {
	pairs := make([]string, 0, len(data.SelectedNetworks))
	for _, network := range data.SelectedNetworks {
		label := network
		if network == catalog.Other {
			label = data.OtherPlatform
		}
		pairs = append(pairs, fmt.Sprintf("%s: %s", label, data.SpendRanges[network]))
	}
	return strings.Join(pairs, "; ")
}
