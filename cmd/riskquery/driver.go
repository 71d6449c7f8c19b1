package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/trip-risk-dashboard/internal/view"
)

var driverCmd = &cobra.Command{
	Use:   "driver <driver-id>",
	Short: "Show the personalized risk report for a driver",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		driverID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("driver id must be an integer, got %q", args[0])
		}
		client := newClient()

		report, err := client.DriverRisk(context.Background(), driverID)
		if err != nil {
			// The dashboard error region and the CLI show the same text.
			return fmt.Errorf("%s", view.DriverErrorMessage(err))
		}
		panel := view.BuildDriverPanel(report)

		if outputType == "json" {
			data, _ := json.MarshalIndent(panel, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		levelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(panel.LevelColor)).Bold(true)

		fmt.Println(panel.Title)
		if panel.Message != "" {
			fmt.Println(panel.Message)
		}
		fmt.Printf("%s  score %s\n", levelStyle.Render(panel.LevelText), panel.Score)

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
			Headers("Field", "Value").
			Rows(
				[]string{"Zones", panel.Zones},
				[]string{"Hours", panel.Hours},
				[]string{"Trips Analyzed", panel.Trips},
				[]string{"Methodology", panel.Methodology},
			)

		fmt.Println(t)
		if panel.Explanation != "" {
			fmt.Println(panel.Explanation)
		}
		return nil
	},
}
