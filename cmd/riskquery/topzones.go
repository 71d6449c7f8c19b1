package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/trip-risk-dashboard/internal/domain"
	"github.com/couchcryptid/trip-risk-dashboard/internal/view"
)

var (
	topZonesHour  int
	topZonesLimit int
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the dashboard overview figures",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		overview, err := client.Overview(context.Background())
		if err != nil {
			return fmt.Errorf("fetch overview: %w", err)
		}
		kpi := view.BuildKPIPanel(overview)

		if outputType == "json" {
			data, _ := json.MarshalIndent(kpi, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
			Headers("Total Trips", "High-Risk Zones", "Peak Hour", "Revenue Volatility").
			Rows([]string{kpi.TotalTrips, kpi.HighRiskZones, kpi.PeakHour, kpi.RevenueVolatility})

		fmt.Println(t)
		return nil
	},
}

var topZonesCmd = &cobra.Command{
	Use:   "top-zones",
	Short: "Show the riskiest zones for an hour",
	RunE: func(cmd *cobra.Command, args []string) error {
		if topZonesHour < 0 || topZonesHour > 23 {
			return fmt.Errorf("hour must be between 0 and 23, got %d", topZonesHour)
		}
		client := newClient()

		records, err := client.TopZones(context.Background(), topZonesHour)
		if err != nil {
			return fmt.Errorf("fetch top zones: %w", err)
		}
		rows := view.BuildTopZoneRows(domain.TopByRisk(records, topZonesLimit))

		if outputType == "json" {
			data, _ := json.MarshalIndent(rows, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		tableRows := [][]string{}
		for i, r := range rows {
			tableRows = append(tableRows, []string{
				fmt.Sprintf("%d", i+1), r.Zone, r.Borough, r.Risk, r.Trips, r.Exposure,
			})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
			Headers("#", "Zone", "Borough", "Risk", "Trips", "Exposure").
			Rows(tableRows...)

		fmt.Printf("Top zones for %s\n", domain.FormatHourLabel(topZonesHour))
		fmt.Println(t)
		return nil
	},
}

var zoneCmd = &cobra.Command{
	Use:   "zone <zone-id>",
	Short: "Show the drill-down detail for one zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if topZonesHour < 0 || topZonesHour > 23 {
			return fmt.Errorf("hour must be between 0 and 23, got %d", topZonesHour)
		}
		client := newClient()

		id := domain.ZoneID(args[0])
		detail, err := client.ZoneDetail(context.Background(), id, topZonesHour)
		if err != nil {
			return fmt.Errorf("fetch zone detail: %w", err)
		}
		panel := view.BuildDetailPanel(id, detail)

		if outputType == "json" {
			data, _ := json.MarshalIndent(panel, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
			Headers("Field", "Value").
			Rows(
				[]string{"Zone", panel.ZoneName},
				[]string{"Borough", panel.Borough},
				[]string{"Trips/Hour", panel.TripsPerHour},
				[]string{"Avg Trip Duration", panel.AvgTripDuration},
				[]string{"Exposure Index", panel.ExposureIndex},
				[]string{"Revenue Stability", panel.RevenueStability},
				[]string{"Risk Score", panel.RiskScore},
			)

		fmt.Printf("Zone %s at %s\n", args[0], domain.FormatHourLabel(topZonesHour))
		fmt.Println(t)
		return nil
	},
}

func init() {
	topZonesCmd.Flags().IntVar(&topZonesHour, "hour", 17, "hour of day (0-23)")
	topZonesCmd.Flags().IntVar(&topZonesLimit, "limit", 5, "number of zones to show")
	zoneCmd.Flags().IntVar(&topZonesHour, "hour", 17, "hour of day (0-23)")
}
