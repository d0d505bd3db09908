package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"opslog-cli/internal/api"
	"opslog-cli/internal/model"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteCSV(&buf, []model.Incident{
		{
			IncidentID:      "INC-1",
			ErrorName:       "Timeout",
			Component:       "DB",
			StartDate:       "10/01/2024",
			DurationMinutes: 42,
			Status:          "Closed",
		},
	})
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d", len(records))
	}
	if records[0][0] != "Incident ID" || records[0][10] != "Duration (Minutes)" {
		t.Fatalf("header = %v", records[0])
	}
	if records[1][0] != "INC-1" || records[1][10] != "42" || records[1][11] != "Closed" {
		t.Fatalf("row = %v", records[1])
	}
}

func TestFetchAllPagesThroughEverything(t *testing.T) {
	t.Parallel()

	const total = 230 // forces three pages at the max page size

	mux := http.NewServeMux()
	mux.HandleFunc("GET /incidents", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
		start := (page - 1) * size
		var rows []model.Incident
		for i := start; i < start+size && i < total; i++ {
			rows = append(rows, model.Incident{IncidentID: "INC-" + strconv.Itoa(i)})
		}
		_ = json.NewEncoder(w).Encode(model.SearchPage{Total: total, Rows: rows})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	all, err := FetchAll(context.Background(), api.NewClient(srv.URL))
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(all) != total {
		t.Fatalf("fetched %d incidents", len(all))
	}
	if all[0].IncidentID != "INC-0" || all[total-1].IncidentID != "INC-229" {
		t.Fatalf("unexpected bounds: %s .. %s", all[0].IncidentID, all[total-1].IncidentID)
	}
}

func TestFetchAllInconsistentTotal(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /incidents", func(w http.ResponseWriter, r *http.Request) {
		// Claims a huge total but always serves one row: paging never
		// converges and must abort.
		_ = json.NewEncoder(w).Encode(model.SearchPage{Total: 100000, Rows: []model.Incident{{IncidentID: "INC-X"}}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	if _, err := FetchAll(context.Background(), api.NewClient(srv.URL)); err == nil {
		t.Fatal("expected paging error")
	}
}
