package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanielPopoola/bambora-gateway-go/internal/core/domain"
	"github.com/spf13/cobra"
)

const dateFlagLayout = "2006-01-02"

func newReportCommand(a *app) *cobra.Command {
	var (
		from, to         string
		startRow, endRow int
		criteria         []string
	)

	query := &cobra.Command{
		Use:   "query",
		Short: "Search transactions in a date range",
		Example: `  gatewayctl report query --from 2024-01-01 --to 2024-01-31 --start-row 1 --end-row 100
  gatewayctl report query --from 2024-01-01 --to 2024-01-01 --criteria '2:%3E:10'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			endDate, err := parseDate(to)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
			parsed, err := parseCriteria(criteria)
			if err != nil {
				return err
			}

			records, err := a.gateway.Reporting().Query(cmd.Context(), startDate, endDate, startRow, endRow, parsed...)
			if err != nil {
				return err
			}
			return a.print(records)
		},
	}

	query.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)")
	query.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)")
	query.Flags().IntVar(&startRow, "start-row", 1, "first row to return")
	query.Flags().IntVar(&endRow, "end-row", 100, "last row to return")
	query.Flags().StringArrayVar(&criteria, "criteria", nil, "search criteria as field:operator:value, repeatable")

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run reporting queries",
	}
	cmd.AddCommand(query)
	return cmd
}

// parseDate accepts a plain date or the report wire layout. An empty value
// yields the zero time so the gateway reports the missing date.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(domain.ReportDateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(dateFlagLayout, value)
}

func parseCriteria(values []string) ([]domain.Criteria, error) {
	criteria := make([]domain.Criteria, 0, len(values))
	for _, v := range values {
		parts := strings.SplitN(v, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid criteria %q: expected field:operator:value", v)
		}
		field, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid criteria field %q: %w", parts[0], err)
		}
		criteria = append(criteria, domain.Criteria{
			Field:    field,
			Operator: parts[1],
			Value:    parts[2],
		})
	}
	return criteria, nil
}
