package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewBuffer(b)
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	logger = newLogger("error")
	jwtSecret = []byte("test-secret")
	initDB()
	seedDB()
	r := gin.Default()
	registerValidators()
	setupRoutes(r)
	return r
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	reg := jsonBody(t, map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "pass123",
	})
	resp := performRequest(r, http.MethodPost, "/register", reg, "")
	if resp.Code != 200 && resp.Code != 409 {
		t.Fatalf("register failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	login := jsonBody(t, map[string]string{"username": username, "password": "pass123"})
	resp = performRequest(r, http.MethodPost, "/login", login, "")
	if resp.Code != 200 {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var loginResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &loginResp)
	token, _ := loginResp["token"].(string)
	if token == "" {
		t.Fatalf("empty token in login response: %+v", loginResp)
	}
	return token
}

func TestPayableFlow(t *testing.T) {
	r := setupTestServer(t)
	token := registerAndLogin(t, r, "payuser")

	due := time.Now().AddDate(0, 0, 3).Format(time.DateOnly)
	body := jsonBody(t, map[string]any{
		"description": "Conta de luz",
		"amount":      250.40,
		"due_date":    due,
		"category":    "moradia",
	})
	resp := performRequest(r, http.MethodPost, "/api/payables", body, token)
	if resp.Code != 200 {
		t.Fatalf("create payable failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var created map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &created)
	id := int(created["id"].(float64))
	if created["status"] != "pendente" {
		t.Fatalf("expected pendente status, got %v", created["status"])
	}

	// mark paid with default date
	resp = performRequest(r, http.MethodPost, fmt.Sprintf("/api/payables/%d/pay", id), nil, token)
	if resp.Code != 200 {
		t.Fatalf("pay failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var paid map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &paid)
	if paid["status"] != "pago" {
		t.Fatalf("expected pago status, got %v", paid["status"])
	}
	if paid["paid_date"] == nil {
		t.Fatalf("expected paid_date to be set")
	}

	// a malformed body on mark-paid is rejected, not treated as "no date"
	body = jsonBody(t, map[string]any{
		"description": "Conta de agua",
		"amount":      80.0,
		"due_date":    due,
		"category":    "moradia",
	})
	resp = performRequest(r, http.MethodPost, "/api/payables", body, token)
	if resp.Code != 200 {
		t.Fatalf("create second payable failed status=%d", resp.Code)
	}
	var second map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &second)
	secondID := int(second["id"].(float64))
	resp = performRequest(r, http.MethodPost,
		fmt.Sprintf("/api/payables/%d/pay", secondID), bytes.NewBufferString("{"), token)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed pay body, got %d", resp.Code)
	}

	// another user must not see this record
	otherToken := registerAndLogin(t, r, "payuser2")
	resp = performRequest(r, http.MethodGet, fmt.Sprintf("/api/payables/%d", id), nil, otherToken)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign record, got %d", resp.Code)
	}

	// unauthorized access is 401
	unauth := performRequest(r, http.MethodGet, "/api/payables", nil, "")
	if unauth.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", unauth.Code)
	}
}

func TestReceivableFlow(t *testing.T) {
	r := setupTestServer(t)
	token := registerAndLogin(t, r, "recvuser")

	due := time.Now().AddDate(0, 0, 5).Format(time.DateOnly)
	resp := performRequest(r, http.MethodPost, "/api/receivables", jsonBody(t, map[string]any{
		"description": "Freela",
		"amount":      1200.0,
		"due_date":    due,
		"category":    "outros",
	}), token)
	if resp.Code != 200 {
		t.Fatalf("create receivable failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var created map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &created)
	id := int(created["id"].(float64))

	// malformed body is rejected
	resp = performRequest(r, http.MethodPost,
		fmt.Sprintf("/api/receivables/%d/receive", id), bytes.NewBufferString("{"), token)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed receive body, got %d", resp.Code)
	}

	resp = performRequest(r, http.MethodPost,
		fmt.Sprintf("/api/receivables/%d/receive", id), nil, token)
	if resp.Code != 200 {
		t.Fatalf("receive failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var received map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &received)
	if received["status"] != "pago" {
		t.Fatalf("expected pago status, got %v", received["status"])
	}
	if received["received_date"] == nil {
		t.Fatalf("expected received_date to be set")
	}
}

func TestInstallmentFlow(t *testing.T) {
	r := setupTestServer(t)
	token := registerAndLogin(t, r, "instuser")

	first := time.Now().AddDate(0, 1, 0).Format(time.DateOnly)
	body := jsonBody(t, map[string]any{
		"description":       "Notebook",
		"total_amount":      3000.0,
		"first_due_date":    first,
		"category":          "outros",
		"installment_count": 3,
	})
	resp := performRequest(r, http.MethodPost, "/api/payables/installments", body, token)
	if resp.Code != 200 {
		t.Fatalf("create installments failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var rows []map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &rows)
	if len(rows) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(rows))
	}
	group := rows[0]["group_id"].(string)
	for i, row := range rows {
		if row["group_id"] != group {
			t.Fatalf("installment %d has different group_id", i)
		}
		if row["amount"].(float64) != 1000.0 {
			t.Fatalf("expected 1000 per installment, got %v", row["amount"])
		}
		want := fmt.Sprintf("Notebook - Parcela %d/3", i+1)
		if row["description"] != want {
			t.Fatalf("expected description %q, got %v", want, row["description"])
		}
	}

	firstID := int(rows[0]["id"].(float64))
	resp = performRequest(r, http.MethodGet, fmt.Sprintf("/api/payables/%d/installments", firstID), nil, token)
	if resp.Code != 200 {
		t.Fatalf("list installments failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var siblings []map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &siblings)
	if len(siblings) != 3 {
		t.Fatalf("expected 3 siblings, got %d", len(siblings))
	}

	// installment-only actions fail on plain records with 400
	plain := jsonBody(t, map[string]any{
		"description": "Plain record",
		"amount":      10.0,
		"due_date":    first,
		"category":    "outros",
	})
	resp = performRequest(r, http.MethodPost, "/api/payables", plain, token)
	if resp.Code != 200 {
		t.Fatalf("create plain payable failed status=%d", resp.Code)
	}
	var plainRow map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &plainRow)
	plainID := int(plainRow["id"].(float64))
	resp = performRequest(r, http.MethodGet, fmt.Sprintf("/api/payables/%d/installments", plainID), nil, token)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-installment record, got %d", resp.Code)
	}
}

func TestGoalContributionFlow(t *testing.T) {
	r := setupTestServer(t)
	token := registerAndLogin(t, r, "goaluser")

	start := time.Now().Format(time.DateOnly)
	target := time.Now().AddDate(1, 0, 0).Format(time.DateOnly)
	body := jsonBody(t, map[string]any{
		"title":         "Reserva",
		"target_amount": 100.0,
		"start_date":    start,
		"target_date":   target,
	})
	resp := performRequest(r, http.MethodPost, "/api/goals", body, token)
	if resp.Code != 200 {
		t.Fatalf("create goal failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var goal map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &goal)
	goalID := int(goal["id"].(float64))
	if goal["color"] != "#3B82F6" {
		t.Fatalf("expected default color, got %v", goal["color"])
	}

	contribute := func(amount float64) map[string]any {
		resp := performRequest(r, http.MethodPost,
			fmt.Sprintf("/api/goals/%d/transactions", goalID),
			jsonBody(t, map[string]any{"amount": amount}), token)
		if resp.Code != 200 {
			t.Fatalf("contribution failed status=%d body=%s", resp.Code, resp.Body.String())
		}
		var out map[string]any
		_ = json.Unmarshal(resp.Body.Bytes(), &out)
		return out["goal"].(map[string]any)
	}

	g := contribute(60)
	if g["current_amount"].(float64) != 60 || g["status"] != "ativa" {
		t.Fatalf("after first contribution: amount=%v status=%v", g["current_amount"], g["status"])
	}
	g = contribute(50)
	if g["current_amount"].(float64) != 110 || g["status"] != "concluida" {
		t.Fatalf("after second contribution: amount=%v status=%v", g["current_amount"], g["status"])
	}

	// deleting a contribution rolls the total back and reverts completion
	resp = performRequest(r, http.MethodGet, fmt.Sprintf("/api/goals/%d/transactions", goalID), nil, token)
	if resp.Code != 200 {
		t.Fatalf("list transactions failed status=%d", resp.Code)
	}
	var txs []map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &txs)
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	lastID := int(txs[0]["id"].(float64))
	resp = performRequest(r, http.MethodDelete, fmt.Sprintf("/api/transactions/%d", lastID), nil, token)
	if resp.Code != 200 {
		t.Fatalf("delete transaction failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var delOut map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &delOut)
	g = delOut["goal"].(map[string]any)
	if g["status"] != "ativa" {
		t.Fatalf("expected goal back to ativa, got %v", g["status"])
	}
}

func TestGoalExplicitStatusSticks(t *testing.T) {
	r := setupTestServer(t)
	token := registerAndLogin(t, r, "pauseuser")

	start := time.Now().Format(time.DateOnly)
	target := time.Now().AddDate(1, 0, 0).Format(time.DateOnly)
	resp := performRequest(r, http.MethodPost, "/api/goals", jsonBody(t, map[string]any{
		"title":         "Viagem",
		"target_amount": 100.0,
		"start_date":    start,
		"target_date":   target,
	}), token)
	if resp.Code != 200 {
		t.Fatalf("create goal failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var goal map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &goal)
	goalID := int(goal["id"].(float64))

	resp = performRequest(r, http.MethodPost,
		fmt.Sprintf("/api/goals/%d/transactions", goalID),
		jsonBody(t, map[string]any{"amount": 120.0}), token)
	if resp.Code != 200 {
		t.Fatalf("contribution failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	update := func(body map[string]any) map[string]any {
		resp := performRequest(r, http.MethodPut,
			fmt.Sprintf("/api/goals/%d", goalID), jsonBody(t, body), token)
		if resp.Code != 200 {
			t.Fatalf("update goal failed status=%d body=%s", resp.Code, resp.Body.String())
		}
		var out map[string]any
		_ = json.Unmarshal(resp.Body.Bytes(), &out)
		return out
	}

	// pausing an over-target goal must stick
	g := update(map[string]any{"status": "pausada"})
	if g["status"] != "pausada" {
		t.Fatalf("expected pausada after explicit pause, got %v", g["status"])
	}

	// an unrelated field update must not flip the paused goal to completed
	g = update(map[string]any{"title": "Viagem longa"})
	if g["status"] != "pausada" {
		t.Fatalf("expected pausada after title update, got %v", g["status"])
	}

	// a target change without an explicit status still re-evaluates
	g = update(map[string]any{"status": "ativa"})
	if g["status"] != "ativa" {
		t.Fatalf("expected ativa after explicit reactivation, got %v", g["status"])
	}
	g = update(map[string]any{"target_amount": 110.0})
	if g["status"] != "concluida" {
		t.Fatalf("expected concluida after lowering target below total, got %v", g["status"])
	}
}

func TestDashboard(t *testing.T) {
	r := setupTestServer(t)
	token := registerAndLogin(t, r, "dashuser")

	// an already-overdue pending payable must still show up in the list
	past := time.Now().AddDate(0, 0, -3).Format(time.DateOnly)
	resp := performRequest(r, http.MethodPost, "/api/payables", jsonBody(t, map[string]any{
		"description": "Conta atrasada",
		"amount":      90.0,
		"due_date":    past,
		"category":    "outros",
	}), token)
	if resp.Code != 200 {
		t.Fatalf("create payable failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// a late active goal must still show up too
	resp = performRequest(r, http.MethodPost, "/api/goals", jsonBody(t, map[string]any{
		"title":         "Meta atrasada",
		"target_amount": 500.0,
		"start_date":    time.Now().AddDate(0, -2, 0).Format(time.DateOnly),
		"target_date":   past,
	}), token)
	if resp.Code != 200 {
		t.Fatalf("create goal failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	resp = performRequest(r, http.MethodPost, "/api/investments", jsonBody(t, map[string]any{
		"name":            "CDB banco",
		"type":            "cdb",
		"invested_amount": 1000.0,
		"current_value":   1050.0,
		"investment_date": past,
	}), token)
	if resp.Code != 200 {
		t.Fatalf("create investment failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	// inactive positions stay out of the total
	resp = performRequest(r, http.MethodPost, "/api/investments", jsonBody(t, map[string]any{
		"name":            "Posicao encerrada",
		"type":            "poupanca",
		"invested_amount": 200.0,
		"investment_date": past,
	}), token)
	if resp.Code != 200 {
		t.Fatalf("create second investment failed status=%d", resp.Code)
	}
	var closed map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &closed)
	resp = performRequest(r, http.MethodPut,
		fmt.Sprintf("/api/investments/%d", int(closed["id"].(float64))),
		jsonBody(t, map[string]any{"active": false}), token)
	if resp.Code != 200 {
		t.Fatalf("deactivate investment failed status=%d", resp.Code)
	}

	resp = performRequest(r, http.MethodGet, "/api/reports/dashboard", nil, token)
	if resp.Code != 200 {
		t.Fatalf("dashboard failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var dash map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &dash)
	if v := dash["active_investments_value"].(float64); v != 1050.0 {
		t.Fatalf("expected active_investments_value 1050, got %v", v)
	}
	payables := dash["upcoming_payables"].([]any)
	if len(payables) != 1 {
		t.Fatalf("expected overdue pending payable in list, got %d entries", len(payables))
	}
	goals := dash["closing_goals"].([]any)
	if len(goals) != 1 {
		t.Fatalf("expected late active goal in list, got %d entries", len(goals))
	}
}

func TestAdminListUsers(t *testing.T) {
	r := setupTestServer(t)

	login := jsonBody(t, map[string]string{"username": "admin", "password": "admin123"})
	resp := performRequest(r, http.MethodPost, "/login", login, "")
	if resp.Code != 200 {
		t.Fatalf("admin login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var loginResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &loginResp)
	token, _ := loginResp["token"].(string)

	resp = performRequest(r, http.MethodGet, "/users", nil, token)
	if resp.Code != 200 {
		t.Fatalf("admin list users failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	memberToken := registerAndLogin(t, r, "plainmember")
	resp = performRequest(r, http.MethodGet, "/users", nil, memberToken)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for member list users, got %d", resp.Code)
	}
}

func TestReportsEndpoints(t *testing.T) {
	r := setupTestServer(t)
	token := registerAndLogin(t, r, "repuser")

	for _, path := range []string{
		"/api/reports/dashboard",
		"/api/reports/chart/monthly?months=6",
		"/api/reports/categories?type=despesas",
		"/api/reports/monthly",
		"/api/reports/cashflow",
		"/api/reports/comparison",
		"/api/reports/alerts",
		"/api/reports/export?format=json",
	} {
		resp := performRequest(r, http.MethodGet, path, nil, token)
		if resp.Code != 200 {
			t.Fatalf("GET %s failed status=%d body=%s", path, resp.Code, resp.Body.String())
		}
	}

	// summary is generated on demand, then readable
	resp := performRequest(r, http.MethodPost, "/api/reports/summary/generate", nil, token)
	if resp.Code != 200 {
		t.Fatalf("generate summary failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	resp = performRequest(r, http.MethodGet, "/api/reports/summary", nil, token)
	if resp.Code != 200 {
		t.Fatalf("get summary failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	resp = performRequest(r, http.MethodGet, "/api/reports/export?format=csv", nil, token)
	if resp.Code != 200 {
		t.Fatalf("csv export failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected text/csv, got %q", ct)
	}
}

func TestMigrateCommand(t *testing.T) {
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	initDB()
}
