package service

import (
	"context"
	"strings"

	"bizdash-core/internal/core/domain"
	"bizdash-core/internal/core/ports"

	"github.com/rs/zerolog"
)

type callService struct {
	sheets    ports.SheetService
	sheetID   string
	worksheet string
	log       zerolog.Logger
}

// NewCallService creates the call-center reader. An empty sheetID yields an
// empty table with the expected schema.
func NewCallService(sheets ports.SheetService, sheetID, worksheet string, log zerolog.Logger) ports.CallService {
	return &callService{sheets: sheets, sheetID: sheetID, worksheet: worksheet, log: log}
}

// List loads the call sheet, projects it onto CallColumns and applies filter.
// On a read failure it returns the empty schema together with the error.
func (s *callService) List(ctx context.Context, filter domain.CallFilter) (domain.Table, error) {
	if s.sheetID == "" {
		return domain.EmptyTable(domain.CallColumns), nil
	}

	table, err := s.sheets.Get(ctx, s.sheetID, s.worksheet, true)
	if err != nil {
		s.log.Warn().Err(err).Str("source", s.sheetID).Msg("calls: could not load live data, using placeholder columns")
		return domain.EmptyTable(domain.CallColumns), err
	}
	return FilterCalls(conformCalls(table), filter), nil
}

// conformCalls reorders table to CallColumns, fills missing columns with ""
// and drops rows where every cell is blank.
func conformCalls(table domain.Table) domain.Table {
	out := domain.EmptyTable(domain.CallColumns)
	for _, r := range table.Rows {
		blank := true
		row := make(domain.Row, len(domain.CallColumns))
		for _, c := range domain.CallColumns {
			v, ok := r[c]
			if !ok || v == nil {
				v = ""
			}
			if strings.TrimSpace(cellString(v)) != "" {
				blank = false
			}
			row[c] = v
		}
		if !blank {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// FilterCalls keeps rows matching every set field of f. Name filters are
// case-insensitive substring matches; a missing sentiment counts as 0.
func FilterCalls(table domain.Table, f domain.CallFilter) domain.Table {
	out := domain.EmptyTable(table.Columns)
	customer := strings.ToLower(strings.TrimSpace(f.CustomerName))
	agent := strings.ToLower(strings.TrimSpace(f.AgentName))
	success := strings.ToLower(strings.TrimSpace(f.CallSuccess))

	for _, r := range table.Rows {
		if customer != "" && !strings.Contains(strings.ToLower(cellString(r["customer_name"])), customer) {
			continue
		}
		if agent != "" && !strings.Contains(strings.ToLower(cellString(r["voice_agent_name"])), agent) {
			continue
		}
		if success != "" && strings.ToLower(cellString(r["call_success"])) != success {
			continue
		}
		sentiment, ok := parseNumber(r["sentiment_score"])
		if !ok {
			sentiment = 0
		}
		if f.SentimentMin != nil && sentiment < *f.SentimentMin {
			continue
		}
		if f.SentimentMax != nil && sentiment > *f.SentimentMax {
			continue
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}
