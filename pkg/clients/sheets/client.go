package sheets

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// AppendRange is the fixed sheet and column span rows are appended to.
const AppendRange = "Sheet1!A:N"

var ErrMissingCredentials = errors.New("missing Google Sheets credentials")

// Client defines the interface for appending rows to the intake spreadsheet
type Client interface {
	AppendRow(ctx context.Context, row []string) error
}

type clientImpl struct {
	clientEmail   string
	privateKey    string
	spreadsheetID string
	logger        *zap.Logger
	opts          []option.ClientOption
}

// NewClient creates a new Google Sheets client authenticated as a service account.
// Credentials are checked on each append, so a misconfigured server still starts.
// Extra options are applied after the service account token source.
func NewClient(clientEmail, privateKey, spreadsheetID string, logger *zap.Logger, opts ...option.ClientOption) Client {
	return &clientImpl{
		clientEmail:   clientEmail,
		privateKey:    privateKey,
		spreadsheetID: spreadsheetID,
		logger:        logger,
		opts:          opts,
	}
}

func (c *clientImpl) service(ctx context.Context) (*sheetsapi.Service, error) {
	if c.clientEmail == "" || c.privateKey == "" || c.spreadsheetID == "" {
		return nil, ErrMissingCredentials
	}

	conf := &jwt.Config{
		Email:      c.clientEmail,
		PrivateKey: []byte(c.privateKey),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	opts := append([]option.ClientOption{option.WithTokenSource(conf.TokenSource(ctx))}, c.opts...)
	srv, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating Sheets service: %w", err)
	}
	return srv, nil
}

func (c *clientImpl) AppendRow(ctx context.Context, row []string) error {
	srv, err := c.service(ctx)
	if err != nil {
		return err
	}

	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}

	resp, err := srv.Spreadsheets.Values.Append(c.spreadsheetID, AppendRange, &sheetsapi.ValueRange{
		Values: [][]interface{}{cells},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("error appending row to Google Sheets: %w", err)
	}

	updatedRange := ""
	if resp.Updates != nil {
		updatedRange = resp.Updates.UpdatedRange
	}
	c.logger.Info("Appended row to Google Sheets",
		zap.String("spreadsheet_id", c.spreadsheetID),
		zap.String("updated_range", updatedRange))
	return nil
}
