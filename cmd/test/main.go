// Smoke-test CLI for a running server. Exercises the API end to end with
// colorized pass/fail output; the immersion test calls the real model and
// needs a valid GEMINI_API_KEY on the server side.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	userID  string
	client  *http.Client

	clientID string
}

func NewTestClient(baseURL, userID string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		userID:  userID,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the server")
	userID := flag.String("user", "smoke-test-user", "Value for the X-User-ID header")
	testType := flag.String("test", "all", "Test type: all, health, clients, immersion, expenses")
	flag.Parse()

	tc := NewTestClient(*baseURL, *userID)

	printHeader("Reelkit API - Smoke Tests")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		tc.runAllTests()
	case "health":
		tc.testHealthCheck()
	case "clients":
		tc.testClients()
	case "immersion":
		if !tc.testClients() {
			os.Exit(1)
		}
		tc.testImmersion()
	case "expenses":
		tc.testExpenses()
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, clients, immersion, expenses")
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Client CRUD", tc.testClients},
		{"Immersion Generation", tc.testImmersion},
		{"Expense Ledger", tc.testExpenses},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	url := fmt.Sprintf("%s/health", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}

	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testClients() bool {
	printTestHeader("Testing Client CRUD")

	payload := map[string]interface{}{
		"product_name": "Collagen Drink",
		"country":      "Cambodia",
		"price":        "$25",
		"problems": []string{
			"Dull skin from late nights",
			"Creams feel greasy and slow",
			"No time for a long routine",
		},
		"target_customers": "Women 25-40 who follow beauty pages",
		"warranty":         "Money back within 14 days",
		"promotion":        "Buy 2 get 1 free this month",
		"uniqueness":       "Drinkable collagen with visible results in 2 weeks",
	}

	status, body := tc.do("POST", "/api/clients", payload)
	if status != http.StatusCreated {
		printError(fmt.Sprintf("Expected status 201, got %d", status))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var created map[string]interface{}
	if err := json.Unmarshal(body, &created); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	id, _ := created["id"].(string)
	if id == "" {
		printError("Created client has no id")
		return false
	}
	tc.clientID = id
	printSuccess(fmt.Sprintf("Created client %s", id))

	status, body = tc.do("GET", "/api/clients", nil)
	if status != http.StatusOK {
		printError(fmt.Sprintf("List clients: expected status 200, got %d", status))
		return false
	}
	printSuccess("Listed clients")
	printJSON(body)

	// Missing fields must be rejected before any write.
	status, body = tc.do("POST", "/api/clients", map[string]interface{}{
		"product_name": "Incomplete",
		"problems":     []string{"only one"},
	})
	if status != http.StatusBadRequest {
		printError(fmt.Sprintf("Invalid client: expected status 400, got %d", status))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}
	printSuccess("Invalid client rejected with field errors")
	return true
}

func (tc *TestClient) testImmersion() bool {
	printTestHeader("Testing Immersion Generation")

	if tc.clientID == "" {
		printError("No client available; run the clients test first")
		return false
	}

	status, body := tc.do("POST", fmt.Sprintf("/api/clients/%s/immersion", tc.clientID), nil)
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var client map[string]interface{}
	if err := json.Unmarshal(body, &client); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	immersion, ok := client["immersion_data"].(map[string]interface{})
	if !ok {
		printError("Response has no immersion_data")
		return false
	}
	typologies, _ := immersion["userTypologies"].([]interface{})
	if len(typologies) < 9 || len(typologies) > 12 {
		printError(fmt.Sprintf("Expected 9-12 typologies, got %d", len(typologies)))
		return false
	}
	printSuccess(fmt.Sprintf("Immersion generated with %d typologies", len(typologies)))

	status, body = tc.do("GET", fmt.Sprintf("/api/clients/%s/immersion/export", tc.clientID), nil)
	if status != http.StatusOK {
		printError(fmt.Sprintf("Export: expected status 200, got %d", status))
		return false
	}
	if !strings.Contains(string(body), "CUSTOMER AVATAR IMMERSION REPORT") {
		printError("Export is missing the report header")
		return false
	}
	printSuccess("Exported report as text")
	return true
}

func (tc *TestClient) testExpenses() bool {
	printTestHeader("Testing Expense Ledger")

	status, body := tc.do("POST", "/api/expense-categories", map[string]interface{}{
		"name":  "Ads",
		"color": "#ff4d4f",
	})
	if status != http.StatusCreated {
		printError(fmt.Sprintf("Create category: expected status 201, got %d", status))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}
	var category map[string]interface{}
	json.Unmarshal(body, &category)
	categoryID, _ := category["id"].(string)
	printSuccess(fmt.Sprintf("Created category %s", categoryID))

	status, body = tc.do("POST", "/api/expenses", map[string]interface{}{
		"amount":      10,
		"type":        "expense",
		"description": "Boosted post",
		"category":    categoryID,
		"date":        time.Now().Format(time.RFC3339),
	})
	if status != http.StatusCreated {
		printError(fmt.Sprintf("Create expense: expected status 201, got %d", status))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}
	printSuccess("Created expense")

	status, body = tc.do("GET", "/api/expense-summary?window=month", nil)
	if status != http.StatusOK {
		printError(fmt.Sprintf("Summary: expected status 200, got %d", status))
		return false
	}
	printSuccess("Loaded expense summary")
	printJSON(body)
	return true
}

func (tc *TestClient) do(method, path string, payload interface{}) (int, []byte) {
	url := tc.baseURL + path
	fmt.Printf("%s %s\n", method, url)

	var reqBody io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		printError(fmt.Sprintf("Building request failed: %v", err))
		return 0, nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", tc.userID)

	resp, err := tc.client.Do(req)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return 0, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
