package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

// Smoke-checks the gateway endpoints against a running instance.
// Usage: go run ./cmd/smoke [baseURL]

var baseURL = "http://localhost:3000/api"

func main() {
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}

	color.Cyan("=== Brandscope Gateway Smoke Check ===")
	color.Cyan("Base URL: %s\n", baseURL)

	token := os.Getenv("SMOKE_TOKEN")
	if token == "" {
		color.Yellow("SMOKE_TOKEN not set, trying sign-in with SMOKE_EMAIL/SMOKE_PASSWORD")
		token = signIn()
	}

	checkSession(token)
	checkCompanies(token)
	checkSocial(token)
	checkRevenue(token)
	checkFundraising(token)

	color.Green("\nDone.")
}

func signIn() string {
	email := os.Getenv("SMOKE_EMAIL")
	password := os.Getenv("SMOKE_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("no credentials provided, continuing unauthenticated")
		return ""
	}

	body := map[string]string{"email": email, "password": password}
	status, data := sendRequest("POST", baseURL+"/auth/signin", "", body)
	if status != http.StatusOK {
		color.Red("sign-in failed with status %d", status)
		return ""
	}

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		color.Red("sign-in response decode failed: %v", err)
		return ""
	}
	color.Green("signed in")
	return resp.Data.AccessToken
}

func checkSession(token string) {
	color.Cyan("\n--- Session ---")
	status, data := sendRequest("GET", baseURL+"/auth/session", token, nil)
	report("GET /auth/session", status, data)
}

func checkCompanies(token string) {
	color.Cyan("\n--- Companies ---")
	status, data := sendRequest("GET", baseURL+"/companies/", token, nil)
	report("GET /companies", status, data)
}

func checkSocial(token string) {
	color.Cyan("\n--- Social ---")
	brand := envOr("SMOKE_BRAND", "acme")
	status, data := sendRequest("GET", baseURL+"/social/?brand="+brand, token, nil)
	report("GET /social?brand="+brand, status, data)
}

func checkRevenue(token string) {
	color.Cyan("\n--- Revenue ---")
	domain := envOr("SMOKE_DOMAIN", "acme.com")
	status, data := sendRequest("GET", baseURL+"/revenue?domain="+domain, token, nil)
	report("GET /revenue?domain="+domain, status, data)
}

func checkFundraising(token string) {
	color.Cyan("\n--- Fundraising ---")
	brand := envOr("SMOKE_BRAND", "acme")
	status, data := sendRequest("GET", baseURL+"/fundraising?brand="+brand, token, nil)
	report("GET /fundraising?brand="+brand, status, data)
}

func report(label string, status int, data []byte) {
	if status >= 200 && status < 300 {
		color.Green("%s -> %d", label, status)
	} else {
		color.Red("%s -> %d", label, status)
	}
	prettyPrint(data)
}

func sendRequest(method, url, token string, body interface{}) (int, []byte) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			color.Red("marshal request body: %v", err)
			return 0, nil
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		color.Red("build request: %v", err)
		return 0, nil
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		color.Red("request failed: %v", err)
		return 0, nil
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		color.Red("read response: %v", err)
		return resp.StatusCode, nil
	}
	return resp.StatusCode, data
}

func prettyPrint(data []byte) {
	if len(data) == 0 {
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Println(buf.String())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
