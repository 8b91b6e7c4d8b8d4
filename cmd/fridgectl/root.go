package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// buildRootCmd constructs the Cobra command tree talking to a running
// fridged daemon over its HTTP API.
func buildRootCmd() *cobra.Command {
	baseURL := "http://127.0.0.1:8080"
	if v := os.Getenv("FRIDGED_URL"); v != "" {
		baseURL = v
	}

	root := &cobra.Command{
		Use:           "fridgectl",
		Short:         "Operator CLI for the fridged storage daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "Base URL of the fridged daemon (defaults FRIDGED_URL)")

	statusCmd := &cobra.Command{Use: "status", Short: "Show grid occupancy and counters", RunE: func(cmd *cobra.Command, args []string) error {
		return getJSON(baseURL + "/api/status")
	}}

	inventoryCmd := &cobra.Command{Use: "inventory", Short: "List stored items with remaining days", RunE: func(cmd *cobra.Command, args []string) error {
		return getJSON(baseURL + "/api/inventory")
	}}

	recommendCmd := &cobra.Command{Use: "recommend", Short: "Show expired/expiring items and the take-out suggestion", RunE: func(cmd *cobra.Command, args []string) error {
		return getJSON(baseURL + "/api/recommendations")
	}}

	removeCmd := &cobra.Command{Use: "remove <item-id>", Short: "Remove one item by id", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		return doJSON(http.MethodDelete, baseURL+"/api/items/"+args[0], nil)
	}}

	buttonCmd := &cobra.Command{Use: "button <place_item|take_item>", Short: "Simulate a hardware button press", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		return doJSON(http.MethodPost, baseURL+"/api/button", map[string]string{"button_type": args[0]})
	}}

	var cameraType string
	captureCmd := &cobra.Command{Use: "capture <image-ref>", Short: "Announce a capture image for recognition", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		return doJSON(http.MethodPost, baseURL+"/api/capture", map[string]string{
			"camera_type": cameraType,
			"image_ref":   args[0],
		})
	}}
	captureCmd.Flags().StringVar(&cameraType, "camera", "internal", "Camera that took the image: internal|external")

	root.AddCommand(statusCmd, inventoryCmd, recommendCmd, removeCmd, buttonCmd, captureCmd)
	return root
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

func getJSON(url string) error {
	return doJSON(http.MethodGet, url, nil)
}

// doJSON performs one API call and pretty-prints the JSON response.
func doJSON(method, url string, payload any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		// not JSON (healthz style); print as-is
		fmt.Println(strings.TrimSpace(string(b)))
	} else {
		fmt.Println(buf.String())
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: status %d", method, url, resp.StatusCode)
	}
	return nil
}
