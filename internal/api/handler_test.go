package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RichardoC/senior-care/internal/db"
	"github.com/RichardoC/senior-care/internal/llm"
	"github.com/RichardoC/senior-care/internal/models"
	"github.com/RichardoC/senior-care/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubConsultant struct {
	result *llm.Result
	err    error
	got    string
}

func (s *stubConsultant) Consult(_ context.Context, situation string) (*llm.Result, error) {
	s.got = situation
	return s.result, s.err
}

func newTestServer(t *testing.T, consultant Consultant) (*httptest.Server, *db.Database) {
	t.Helper()
	database, err := db.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	mux := http.NewServeMux()
	NewHandler(consultant, database, session.NewManager(), zap.NewNop()).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, database
}

func postJSON(t *testing.T, client *http.Client, url, body string) *http.Response {
	t.Helper()
	resp, err := client.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestConsult_Success(t *testing.T) {
	stub := &stubConsultant{result: &llm.Result{Content: "## 기초연금\n- 신청 가능", Model: "qwen/qwen3-coder:free"}}
	srv, _ := newTestServer(t, stub)

	resp := postJSON(t, srv.Client(), srv.URL+"/api/consult", `{"situation":"68세 독거"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[ConsultResponse](t, resp)
	assert.Equal(t, "68세 독거", stub.got)
	assert.Equal(t, "qwen/qwen3-coder:free", body.Model)
	assert.Contains(t, body.HTML, "<h2")
	assert.Equal(t, llm.Disclaimer, body.Disclaimer)
}

func TestConsult_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		hint   bool
	}{
		{"empty input", llm.ErrEmptyInput, http.StatusBadRequest, false},
		{"missing credential", llm.ErrMissingCredential, http.StatusServiceUnavailable, true},
		{"all models failed", fmt.Errorf("%w: boom", llm.ErrAllModelsFailed), http.StatusBadGateway, true},
		{"unexpected", errors.New("weird"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, &stubConsultant{err: tt.err})

			resp := postJSON(t, srv.Client(), srv.URL+"/api/consult", `{"situation":"x"}`)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode[ErrorResponse](t, resp)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.hint, body.Hint != "")
		})
	}
}

func TestConsult_RejectsBadBodyAndMethod(t *testing.T) {
	srv, _ := newTestServer(t, &stubConsultant{})

	resp := postJSON(t, srv.Client(), srv.URL+"/api/consult", `{`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	get, err := srv.Client().Get(srv.URL + "/api/consult")
	require.NoError(t, err)
	defer get.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, get.StatusCode)
}

func TestConsultations_ListSearchClear(t *testing.T) {
	srv, database := newTestServer(t, &stubConsultant{})
	require.NoError(t, database.SaveConsultation(&models.Consultation{
		ID: uuid.NewString(), Situation: "lost my job", Content: "emergency support", Model: "m",
	}))

	resp, err := srv.Client().Get(srv.URL + "/api/consultations?limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Consultation](t, resp), 1)

	search, err := srv.Client().Get(srv.URL + "/api/consultations/search?q=emergency")
	require.NoError(t, err)
	defer search.Body.Close()
	require.Equal(t, http.StatusOK, search.StatusCode)
	assert.Len(t, decode[[]models.Consultation](t, search), 1)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/consultations", nil)
	require.NoError(t, err)
	del, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	list, err := database.ListConsultations(10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConsultations_BadLimitAndMissingQuery(t *testing.T) {
	srv, _ := newTestServer(t, &stubConsultant{})

	resp, err := srv.Client().Get(srv.URL + "/api/consultations?limit=-1")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	search, err := srv.Client().Get(srv.URL + "/api/consultations/search")
	require.NoError(t, err)
	defer search.Body.Close()
	assert.Equal(t, http.StatusBadRequest, search.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, &stubConsultant{})
	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
