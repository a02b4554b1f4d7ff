package ledger

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, _ := newTestService(t)
	h := NewHandler(svc)

	app := fiber.New()
	app.Post("/wallets", h.CreateWallet)
	app.Get("/wallets/:walletId", h.GetWallet)
	app.Post("/deposit", h.Deposit)
	app.Post("/swap", h.Swap)
	app.Post("/transfer", h.Transfer)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &decoded); err != nil {
			t.Fatalf("decode body %q: %v", payload, err)
		}
	}
	return resp.StatusCode, decoded
}

func TestHandlerWalletLifecycle(t *testing.T) {
	app := setupTestApp(t)

	status, created := doJSON(t, app, fiber.MethodPost, "/wallets", "")
	if status != http.StatusCreated {
		t.Fatalf("create wallet: expected 201, got %d", status)
	}
	walletID, _ := created["wallet_id"].(string)
	if walletID == "" {
		t.Fatalf("missing wallet_id in %v", created)
	}
	balances, _ := created["balances"].(map[string]any)
	if len(balances) == 0 {
		t.Fatalf("expected seeded balances, got %v", created)
	}

	status, body := doJSON(t, app, fiber.MethodPost, "/deposit",
		`{"wallet_id":"`+walletID+`","currency":"USDx","amount":100}`)
	if status != http.StatusOK {
		t.Fatalf("deposit: expected 200, got %d (%v)", status, body)
	}

	status, body = doJSON(t, app, fiber.MethodPost, "/swap",
		`{"wallet_id":"`+walletID+`","from_currency":"USDx","to_currency":"cNGN","amount":100}`)
	if status != http.StatusOK {
		t.Fatalf("swap: expected 200, got %d (%v)", status, body)
	}
	if body["rate"] != 1495.0 {
		t.Fatalf("expected rate 1495.0, got %v", body["rate"])
	}

	status, body = doJSON(t, app, fiber.MethodGet, "/wallets/"+walletID, "")
	if status != http.StatusOK {
		t.Fatalf("get wallet: expected 200, got %d", status)
	}
	got, _ := body["balances"].(map[string]any)
	if got["cNGN"] != 149500.0 {
		t.Fatalf("expected cNGN=149500.0, got %v", got["cNGN"])
	}
}

func TestHandlerErrorCodes(t *testing.T) {
	app := setupTestApp(t)

	_, created := doJSON(t, app, fiber.MethodPost, "/wallets", "")
	walletID, _ := created["wallet_id"].(string)

	cases := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown wallet",
			method:     fiber.MethodGet,
			path:       "/wallets/does-not-exist",
			wantStatus: http.StatusNotFound,
			wantCode:   "wallet_not_found",
		},
		{
			name:       "non-numeric amount",
			method:     fiber.MethodPost,
			path:       "/deposit",
			body:       `{"wallet_id":"` + walletID + `","currency":"USDx","amount":"abc"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_amount",
		},
		{
			name:       "negative amount",
			method:     fiber.MethodPost,
			path:       "/deposit",
			body:       `{"wallet_id":"` + walletID + `","currency":"USDx","amount":-5}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_amount",
		},
		{
			name:       "unsupported currency",
			method:     fiber.MethodPost,
			path:       "/deposit",
			body:       `{"wallet_id":"` + walletID + `","currency":"GBP","amount":5}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "unsupported_currency",
		},
		{
			name:       "insufficient funds",
			method:     fiber.MethodPost,
			path:       "/swap",
			body:       `{"wallet_id":"` + walletID + `","from_currency":"USDx","to_currency":"cNGN","amount":10}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "insufficient_funds",
		},
		{
			name:       "transfer to unknown wallet",
			method:     fiber.MethodPost,
			path:       "/transfer",
			body:       `{"from_wallet":"` + walletID + `","to_wallet":"missing","currency":"USDx","amount":5}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "wallet_not_found",
		},
	}

	for _, tc := range cases {
		status, body := doJSON(t, app, tc.method, tc.path, tc.body)
		if status != tc.wantStatus {
			t.Fatalf("%s: expected status %d, got %d (%v)", tc.name, tc.wantStatus, status, body)
		}
		if body["code"] != tc.wantCode {
			t.Fatalf("%s: expected code %q, got %v", tc.name, tc.wantCode, body["code"])
		}
	}
}

func TestHandlerRateUnavailable(t *testing.T) {
	app := setupTestApp(t)

	_, created := doJSON(t, app, fiber.MethodPost, "/wallets", "")
	walletID, _ := created["wallet_id"].(string)
	doJSON(t, app, fiber.MethodPost, "/deposit",
		`{"wallet_id":"`+walletID+`","currency":"cXAF","amount":100}`)

	status, body := doJSON(t, app, fiber.MethodPost, "/swap",
		`{"wallet_id":"`+walletID+`","from_currency":"cXAF","to_currency":"cNGN","amount":10}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%v)", status, body)
	}
	if body["code"] != "rate_unavailable" {
		t.Fatalf("expected code rate_unavailable, got %v", body["code"])
	}
}
