package main

import (
	"fmt"
	"strconv"

	"github.com/RichardoC/senior-care/internal/vitals"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var severityColors = map[vitals.Severity]lipgloss.Color{
	vitals.SeveritySuccess: lipgloss.Color("#4CAF50"),
	vitals.SeverityWarning: lipgloss.Color("#FF9800"),
	vitals.SeverityError:   lipgloss.Color("#F44336"),
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify SYSTOLIC DIASTOLIC",
		Short: "Classify a blood-pressure reading",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			systolic, err := parsePressure("systolic", args[0])
			if err != nil {
				return err
			}
			diastolic, err := parsePressure("diastolic", args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatClassification(systolic, diastolic))
			return nil
		},
	}
}

func parsePressure(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	if n < 0 || n > 300 {
		return 0, fmt.Errorf("%s must be between 0 and 300, got %d", name, n)
	}
	return n, nil
}

func formatClassification(systolic, diastolic int) string {
	c := vitals.Classify(systolic, diastolic)
	style := lipgloss.NewStyle().Bold(true).Foreground(severityColors[c.Severity])
	return fmt.Sprintf("%d/%d mmHg: %s", systolic, diastolic, style.Render(string(c.Band)))
}
