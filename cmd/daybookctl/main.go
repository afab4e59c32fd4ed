// daybookctl is a small operator CLI against a running gateway.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var addr string

func client() *resty.Client {
	return resty.New().SetBaseURL(addr).SetTimeout(10 * time.Second)
}

// printBody pretty-prints a JSON response body, falling back to raw
// output when the body isn't JSON.
func printBody(raw []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(buf.String())
}

func run(call func() (*resty.Response, error)) error {
	resp, err := call()
	if err != nil {
		return err
	}
	printBody(resp.Body())
	if resp.IsError() {
		os.Exit(1)
	}
	return nil
}

func main() {
	root := &cobra.Command{
		Use:   "daybookctl",
		Short: "Operate a daybook gateway from the command line",
	}
	defaultAddr := os.Getenv("DAYBOOK_ADDR")
	if defaultAddr == "" {
		defaultAddr = "http://localhost:8080"
	}
	root.PersistentFlags().StringVar(&addr, "addr", defaultAddr, "gateway base URL")

	var text, encouragement, date, clock string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a journal entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			body := map[string]string{}
			if cmd.Flags().Changed("text") {
				body["text"] = text
			}
			if cmd.Flags().Changed("encouragement") {
				body["encouragement"] = encouragement
			}
			if cmd.Flags().Changed("date") {
				body["date"] = date
			}
			if cmd.Flags().Changed("time") {
				body["time"] = clock
			}
			return run(func() (*resty.Response, error) {
				return client().R().SetBody(body).Post("/api/entries/create")
			})
		},
	}
	createCmd.Flags().StringVar(&text, "text", "", "entry text")
	createCmd.Flags().StringVar(&encouragement, "encouragement", "", "encouragement line")
	createCmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&clock, "time", "", "time (HH:MM)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List entry previews, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(func() (*resty.Response, error) {
				return client().R().Get("/api/entries/list")
			})
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func() (*resty.Response, error) {
				return client().R().SetQueryParam("id", args[0]).Get("/api/entries/get")
			})
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update entry fields (blank text/encouragement clears them)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"id": args[0]}
			if cmd.Flags().Changed("text") {
				body["text"] = text
			}
			if cmd.Flags().Changed("encouragement") {
				body["encouragement"] = encouragement
			}
			if cmd.Flags().Changed("date") {
				body["date"] = date
			}
			if cmd.Flags().Changed("time") {
				body["time"] = clock
			}
			return run(func() (*resty.Response, error) {
				return client().R().SetBody(body).Post("/api/entries/update")
			})
		},
	}
	updateCmd.Flags().StringVar(&text, "text", "", "entry text")
	updateCmd.Flags().StringVar(&encouragement, "encouragement", "", "encouragement line")
	updateCmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&clock, "time", "", "time (HH:MM)")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(func() (*resty.Response, error) {
				return client().R().SetBody(map[string]string{"id": args[0]}).Post("/api/entries/delete")
			})
		},
	}

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Fetch a random encouragement via the gateway",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(func() (*resty.Response, error) {
				return client().R().Get("/api/b/random")
			})
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Trigger a CSV export via the gateway",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(func() (*resty.Response, error) {
				return client().R().Post("/api/d/export-csv")
			})
		},
	}

	root.AddCommand(createCmd, listCmd, getCmd, updateCmd, deleteCmd, randomCmd, exportCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
