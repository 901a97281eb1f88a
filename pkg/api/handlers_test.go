package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"media-buyer-intake/pkg/clients/sheets"
	"media-buyer-intake/pkg/models"
	"media-buyer-intake/pkg/services"
)

type fakeSheets struct {
	rows [][]string
	err  error
}

func (f *fakeSheets) AppendRow(_ context.Context, row []string) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

func newTestRouter(client sheets.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	h := NewHandlers(services.NewFormSubmissionService(client, logger), logger)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func postForm(t *testing.T, r *gin.Engine, body []byte) (int, models.SubmitResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/submit-form", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp models.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body=%s", w.Body.String())
	return w.Code, resp
}

func TestHandleSubmitForm_Success(t *testing.T) {
	client := &fakeSheets{}
	r := newTestRouter(client)

	body, _ := json.Marshal(map[string]any{
		"contactName":                "Jane",
		"contactEmail":               "j@x.com",
		"telegramId":                 "@jane",
		"skypeId":                    "live:jane",
		"selectedVerticalCategories": []string{"E-commerce & Retail"},
		"selectedSubcategories":      map[string][]string{"E-commerce & Retail": {"Home & Garden"}},
		"otherVertical":              "",
		"selectedLeadVerticals":      []string{},
		"otherLeadVertical":          "",
		"selectedNetworks":           []string{"Other"},
		"spendRanges":                map[string]string{"Other": "0-10k"},
		"otherPlatform":              "Bing Ads",
		"monthlySpend":               "10k-50k",
		"averageRoas":                "2-3x",
		"teamSize":                   "solo",
		"profitShare":                "20-30",
	})

	code, resp := postForm(t, r, body)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.SubmitResponse{Success: true, Message: "Form submitted successfully"}, resp)
	require.Len(t, client.rows, 1)
	assert.Len(t, client.rows[0], services.RowWidth)
	assert.Equal(t, "Bing Ads: 0-10k", client.rows[0][9])
}

func TestHandleSubmitForm_NoServerSideValidation(t *testing.T) {
	client := &fakeSheets{}
	r := newTestRouter(client)

	code, resp := postForm(t, r, []byte(`{}`))

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.Len(t, client.rows, 1)
}

func TestHandleSubmitForm_AppendFailure(t *testing.T) {
	r := newTestRouter(&fakeSheets{err: sheets.ErrMissingCredentials})

	code, resp := postForm(t, r, []byte(`{"contactName":"Jane"}`))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, sheets.ErrMissingCredentials.Error())
}

func TestHandleSubmitForm_MalformedJSON(t *testing.T) {
	client := &fakeSheets{err: errors.New("must not be called")}
	r := newTestRouter(client)

	code, resp := postForm(t, r, []byte(`{"contactName":`))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(&fakeSheets{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
