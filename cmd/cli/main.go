package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	baseURL string
	timeout time.Duration
)

// chart is a declarative chart of accounts loaded from a YAML file.
type chart struct {
	Accounts []chartAccount `yaml:"accounts"`
}

type chartAccount struct {
	Name   string `yaml:"name"`
	Number string `yaml:"number"`
	Kind   string `yaml:"kind"`
	Contra bool   `yaml:"contra"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "double-double",
		Short: "Double-entry ledger CLI tool",
		Long:  `A command line interface for interacting with the double-double ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	var chartFile string
	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Create accounts from a chart of accounts file",
		Run: func(cmd *cobra.Command, args []string) {
			setupAccounts(chartFile)
		},
	}
	setupCmd.Flags().StringVar(&chartFile, "file", "chart.yaml", "Path to the chart of accounts YAML file")

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	balanceCmd := &cobra.Command{
		Use:   "balance <name-or-number>",
		Short: "Show the balance of an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			accountBalance(args[0])
		},
	}
	accountCmd.AddCommand(balanceCmd)

	trialCmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Check that the ledger is in balance",
		Run: func(cmd *cobra.Command, args []string) {
			trialBalance()
		},
	}

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(trialCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupAccounts(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading chart file: %v\n", err)
		os.Exit(1)
	}

	ch, err := parseChart(data)
	if err != nil {
		fmt.Printf("Error parsing chart file: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	for _, acc := range ch.Accounts {
		body, err := json.Marshal(map[string]any{
			"name":   acc.Name,
			"number": acc.Number,
			"kind":   acc.Kind,
			"contra": acc.Contra,
		})
		if err != nil {
			fmt.Printf("Error encoding account %q: %v\n", acc.Name, err)
			os.Exit(1)
		}

		resp, err := client.Post(baseURL+"/api/v1/accounts", "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Printf("Error creating account %q: %v\n", acc.Name, err)
			os.Exit(1)
		}
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusCreated:
			fmt.Printf("Created account %q (%s)\n", acc.Name, acc.Number)
		case http.StatusConflict:
			fmt.Printf("Account %q already exists, skipping\n", acc.Name)
		default:
			fmt.Printf("Failed to create account %q (Status: %d)\nResponse: %s\n", acc.Name, resp.StatusCode, string(respBody))
			os.Exit(1)
		}
	}
}

func accountBalance(ref string) {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + "/api/v1/accounts/resolve?ref=" + url.QueryEscape(ref))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	account, err := decodeResponse(resp)
	if err != nil {
		fmt.Printf("Error resolving account: %v\n", err)
		os.Exit(1)
	}

	id, _ := account["id"].(string)
	resp, err = client.Get(baseURL + "/api/v1/accounts/" + id + "/balance")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	balance, err := decodeResponse(resp)
	if err != nil {
		fmt.Printf("Error fetching balance: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Account: %s (%s)\n", account["name"], account["number"])
	fmt.Printf("Balance: %v\n", balance["balance"])
}

func trialBalance() {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + "/api/v1/balances/trial")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	result, err := decodeResponse(resp)
	if err != nil {
		fmt.Printf("Error fetching trial balance: %v\n", err)
		os.Exit(1)
	}

	if balanced, ok := result["balanced"].(bool); ok && balanced {
		fmt.Println("Ledger is BALANCED")
	} else {
		fmt.Printf("Ledger is OUT OF BALANCE by %v\n", result["balance"])
		os.Exit(1)
	}
}

func parseChart(data []byte) (*chart, error) {
	var ch chart
	if err := yaml.Unmarshal(data, &ch); err != nil {
		return nil, err
	}

	for _, acc := range ch.Accounts {
		if acc.Name == "" {
			return nil, fmt.Errorf("chart account missing name")
		}
		if acc.Kind == "" {
			return nil, fmt.Errorf("chart account %q missing kind", acc.Name)
		}
	}

	return &ch, nil
}

// decodeResponse reads the body and decodes it, treating any non-200 status
// as an error.
func decodeResponse(resp *http.Response) (map[string]any, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}
