package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/blogem/editpilot/models"
	"github.com/blogem/editpilot/services"
)

var (
	rawFile     string
	editContext string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize saved model output the way the service does",
}

var normalizeEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Normalize a content edit response against an edit request context",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readFile(cmd, rawFile)
		if err != nil {
			return err
		}

		var req models.EditRequest
		if editContext != "" {
			if err := readJSONFile(cmd, editContext, &req); err != nil {
				return err
			}
		}

		edits, err := services.NormalizeEditResponse(string(raw), req.Dictionary, req.ImageSlots, req.EffectiveCapabilities())
		if err != nil {
			return err
		}
		return printJSON(cmd, edits)
	},
}

var normalizeKitCmd = &cobra.Command{
	Use:   "kit",
	Short: "Normalize a kit edit response",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readFile(cmd, rawFile)
		if err != nil {
			return err
		}

		patch, err := services.NormalizeKitResponse(string(raw))
		if err != nil {
			return err
		}
		return printJSON(cmd, patch)
	},
}

func init() {
	for _, c := range []*cobra.Command{normalizeEditCmd, normalizeKitCmd} {
		c.Flags().StringVarP(&rawFile, "file", "f", "", "Raw model output file (- for stdin)")
		c.MarkFlagRequired("file")
	}
	normalizeEditCmd.Flags().StringVarP(&editContext, "context", "c", "", "Edit request JSON file with dictionary, imageSlots and capabilities")

	normalizeCmd.AddCommand(normalizeEditCmd, normalizeKitCmd)
	rootCmd.AddCommand(normalizeCmd)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
