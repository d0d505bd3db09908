// Package export writes incident reports. The backend has no bulk endpoint,
// so the exporter pages through the search API and emits CSV.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"opslog-cli/internal/api"
	"opslog-cli/internal/model"
	"opslog-cli/internal/workspace"
)

// DefaultFileName mirrors the report name the original exporter produced.
const DefaultFileName = "incident_report.csv"

var columns = []struct {
	header string
	value  func(model.Incident) string
}{
	{"Incident ID", func(i model.Incident) string { return i.IncidentID }},
	{"Error Name", func(i model.Incident) string { return i.ErrorName }},
	{"Component", func(i model.Incident) string { return i.Component }},
	{"Root Cause", func(i model.Incident) string { return i.RootCause }},
	{"Remark", func(i model.Incident) string { return i.Remark }},
	{"Action Taken", func(i model.Incident) string { return i.ActionTaken }},
	{"Start Date", func(i model.Incident) string { return i.StartDate }},
	{"Start Time", func(i model.Incident) string { return i.StartTime }},
	{"End Date", func(i model.Incident) string { return i.EndDate }},
	{"End Time", func(i model.Incident) string { return i.EndTime }},
	{"Duration (Minutes)", func(i model.Incident) string { return formatMinutes(i.DurationMinutes) }},
	{"Status", func(i model.Incident) string { return i.Status }},
	{"Modified By", func(i model.Incident) string { return i.ModifiedBy }},
	{"Modified At", func(i model.Incident) string { return i.ModifiedAt }},
}

func formatMinutes(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteCSV writes the report header and one row per incident.
func WriteCSV(w io.Writer, incidents []model.Incident) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.header
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, inc := range incidents {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = c.value(inc)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FetchAll pages through every incident using the largest page size the
// backend accepts.
func FetchAll(ctx context.Context, client *api.Client) ([]model.Incident, error) {
	var all []model.Incident
	for page := 1; ; page++ {
		res, err := client.SearchIncidents(ctx, "", page, workspace.MaxPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, res.Rows...)
		if len(res.Rows) == 0 || len(all) >= res.Total {
			return all, nil
		}
		if page > res.Total/workspace.MaxPageSize+1 {
			// The backend reported a total that paging never reaches.
			return nil, fmt.Errorf("inconsistent paging: fetched %d of %d", len(all), res.Total)
		}
	}
}
