package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blogem/editpilot/models"
	"github.com/blogem/editpilot/services"
)

var (
	contextFile string
	instruction string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print a compiled model prompt for a saved request context",
}

var promptEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Compile a content edit prompt from an edit request JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req models.EditRequest
		if err := readJSONFile(cmd, contextFile, &req); err != nil {
			return err
		}
		if instruction != "" {
			req.Instruction = instruction
		}
		if errors := req.Validate(); len(errors) > 0 {
			return &services.ValidationError{Messages: errors}
		}

		prompt, err := services.CompileEditPrompt(req.Dictionary, req.Instruction, req.ImageSlots, req.EffectiveCapabilities())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), prompt)
		return err
	},
}

var promptKitCmd = &cobra.Command{
	Use:   "kit",
	Short: "Compile a kit edit prompt from a kit request JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req models.KitRequest
		if err := readJSONFile(cmd, contextFile, &req); err != nil {
			return err
		}
		if instruction != "" {
			req.Instruction = instruction
		}
		if errors := req.Validate(); len(errors) > 0 {
			return &services.ValidationError{Messages: errors}
		}

		prompt, err := services.CompileKitPrompt(req.KitSettings, req.Instruction)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), prompt)
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{promptEditCmd, promptKitCmd} {
		c.Flags().StringVarP(&contextFile, "file", "f", "", "Request JSON file (- for stdin)")
		c.Flags().StringVarP(&instruction, "instruction", "i", "", "Instruction, overrides the one in the file")
		c.MarkFlagRequired("file")
	}
	promptCmd.AddCommand(promptEditCmd, promptKitCmd)
	rootCmd.AddCommand(promptCmd)
}

// readFile reads path, or stdin when path is "-"
func readFile(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func readJSONFile(cmd *cobra.Command, path string, v interface{}) error {
	data, err := readFile(cmd, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
