package cli

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Show how a commit message is parsed",
	Long: `Decomposes a commit message into issue id, verb, description, body
and manual bump override. Reads from stdin when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if conventionService == nil {
		return errors.New("convention service not configured")
	}

	message := ""
	if len(args) == 1 {
		message = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		message = string(data)
	}

	parsed := conventionService.Parse(message)

	if parseJSON {
		out := struct {
			IssueID     string `json:"issue_id,omitempty"`
			Verb        string `json:"verb,omitempty"`
			Description string `json:"description"`
			Body        string `json:"body,omitempty"`
			ManualBump  string `json:"manual_bump,omitempty"`
		}{
			IssueID:     parsed.IssueID,
			Verb:        parsed.Verb,
			Description: parsed.Description,
			Body:        parsed.Body,
		}
		if parsed.HasManualBump {
			out.ManualBump = parsed.ManualBump.String()
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	printField := func(name, value string) {
		if value == "" {
			value = "-"
		}
		cmd.Printf("%-12s %s\n", name+":", value)
	}
	printField("issue id", parsed.IssueID)
	printField("verb", parsed.Verb)
	printField("description", parsed.Description)
	printField("body", parsed.Body)
	if parsed.HasManualBump {
		printField("manual bump", parsed.ManualBump.String())
	} else {
		printField("manual bump", "")
	}
	return nil
}
