package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/RichardoC/senior-care/internal/config"
	"github.com/RichardoC/senior-care/internal/llm"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E65100")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32"))
)

func newConsultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consult [situation...]",
		Short: "Ask for welfare programs matching a situation (reads stdin when no args)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			situation := strings.Join(args, " ")
			if situation == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				situation = string(data)
			}

			token, _, err := config.ResolveAPIKey(cfg.Secrets.Path)
			if err != nil {
				return err
			}
			svc, err := llm.New(cfg.LLM, token, nil, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result, err := svc.Consult(cmd.Context(), situation)
			switch {
			case errors.Is(err, llm.ErrEmptyInput):
				fmt.Fprintln(out, warnStyle.Render("Please describe your situation."))
				return nil
			case errors.Is(err, llm.ErrMissingCredential):
				fmt.Fprintln(out, errorStyle.Render("OPENROUTER_API_KEY is not configured."))
				fmt.Fprintln(out, infoStyle.Render("Set it in "+cfg.Secrets.Path+" or the environment."))
				return err
			case errors.Is(err, llm.ErrAllModelsFailed):
				fmt.Fprintln(out, errorStyle.Render("No model could answer: "+err.Error()))
				fmt.Fprintln(out, infoStyle.Render("All models are unavailable. Please try again later."))
				return err
			case err != nil:
				return err
			}

			fmt.Fprintln(out, renderAnswer(result.Content))
			fmt.Fprintln(out, warnStyle.Render(llm.Disclaimer))
			return nil
		},
	}
}

// renderAnswer formats markdown for the terminal, falling back to the raw text.
func renderAnswer(content string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
