package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient("intake@project.iam.gserviceaccount.com", "test-key", "sheet-123", zap.NewNop(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
}

func TestAppendRow_SendsSingleRawRow(t *testing.T) {
	var (
		gotPath   string
		gotOption string
		gotBody   struct {
			Values [][]string `json:"values"`
		}
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOption = r.URL.Query().Get("valueInputOption")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-123","updates":{"updatedRange":"Sheet1!A7:N7","updatedRows":1}}`))
	})

	row := []string{"2024-01-01T00:00:00.000Z", "Jane", "j@x.com"}
	err := client.AppendRow(context.Background(), row)
	require.NoError(t, err)

	assert.Equal(t, "/v4/spreadsheets/sheet-123/values/Sheet1!A:N:append", gotPath)
	assert.Equal(t, "RAW", gotOption)
	assert.Equal(t, [][]string{row}, gotBody.Values)
}

func TestAppendRow_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`))
	})

	err := client.AppendRow(context.Background(), []string{"x"})
	require.Error(t, err)

	var apiErr *googleapi.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
}

func TestAppendRow_MissingCredentials(t *testing.T) {
	tests := []struct {
		name, email, key, sheet string
	}{
		{name: "email", key: "k", sheet: "s"},
		{name: "key", email: "e", sheet: "s"},
		{name: "sheet", email: "e", key: "k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.email, tt.key, tt.sheet, zap.NewNop())
			err := client.AppendRow(context.Background(), []string{"x"})
			assert.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}
