package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/echo-journal/echod/internal/domain"
)

func TestCreateAndListEntries(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	user := createTestUser(t, e, h)

	body := fmt.Sprintf(`{"user_id":%q,"content":"finished the draft","source":"api"}`, user.UserID)
	c, rec := postJSON(t, e, "/v1/entries", body)
	if err := h.CreateEntry(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var entry domain.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decoding entry: %v", err)
	}
	if entry.EntryID == "" || entry.Role != domain.RoleUser {
		t.Errorf("unexpected entry: %+v", entry)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+user.UserID+"/entries", nil)
	listRec := httptest.NewRecorder()
	lc := e.NewContext(req, listRec)
	lc.SetParamNames("user_id")
	lc.SetParamValues(user.UserID)

	if err := h.ListUserEntries(lc); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if listRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listRec.Code)
	}
	var resp struct {
		Entries []domain.Entry `json:"entries"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(resp.Entries))
	}
}

func TestListUserEntriesBadLimit(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	user := createTestUser(t, e, h)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+user.UserID+"/entries?limit=zero", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues(user.UserID)

	if err := h.ListUserEntries(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetEntryNotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/entries/ent_missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("entry_id")
	c.SetParamValues("ent_missing")

	if err := h.GetEntry(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
