package holidays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"stayops/internal/app/policies"
	"stayops/internal/domain/calendar"
)

// FeedSource pulls national holidays from a Nager.Date-style public feed.
// Callers treat any error as "no holidays"; this client only reports them.
type FeedSource struct {
	Client   *http.Client
	Endpoint string
	Country  string
	Logger   *slog.Logger
}

type feedHoliday struct {
	Date      string   `json:"date"`
	LocalName string   `json:"localName"`
	Name      string   `json:"name"`
	Global    bool     `json:"global"`
	Types     []string `json:"types"`
}

func (f *FeedSource) Holidays(ctx context.Context, startYear, endYear int) ([]calendar.Holiday, error) {
	if f == nil || f.Client == nil {
		return nil, errors.New("holidays: http client not configured")
	}
	if f.Endpoint == "" {
		return nil, errors.New("holidays: feed endpoint not configured")
	}
	if endYear < startYear {
		startYear, endYear = endYear, startYear
	}

	var out []calendar.Holiday
	for year := startYear; year <= endYear; year++ {
		batch, err := f.fetchYear(ctx, year)
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (f *FeedSource) fetchYear(ctx context.Context, year int) ([]calendar.Holiday, error) {
	url := fmt.Sprintf("%s/%d/%s", f.Endpoint, year, f.Country)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := f.Client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return nil, fmt.Errorf("holidays: feed returned %d: %s", response.StatusCode, string(body))
	}

	var rows []feedHoliday
	if err := json.NewDecoder(response.Body).Decode(&rows); err != nil {
		return nil, err
	}

	out := make([]calendar.Holiday, 0, len(rows))
	for _, row := range rows {
		date, err := time.ParseInLocation("2006-01-02", row.Date, time.UTC)
		if err != nil {
			if f.Logger != nil {
				f.Logger.Warn("skipping holiday with unparsable date", "date", row.Date, "name", row.Name)
			}
			continue
		}
		name := row.LocalName
		if name == "" {
			name = row.Name
		}
		out = append(out, calendar.Holiday{
			Date: date,
			Name: name,
			Type: holidayType(row),
		})
	}
	return out, nil
}

func holidayType(row feedHoliday) calendar.HolidayType {
	for _, t := range row.Types {
		if t == "Optional" {
			return calendar.HolidayOptional
		}
	}
	if row.Global {
		return calendar.HolidayNational
	}
	return calendar.HolidayRegional
}

var _ policies.HolidaySource = (*FeedSource)(nil)
