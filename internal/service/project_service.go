package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bizdash-core/internal/core/domain"
	"bizdash-core/internal/core/ports"
	"bizdash-core/pkg/apperror"

	"github.com/rs/zerolog"
)

// Fallback labels reported in ports.ProjectLoad.
const (
	FallbackStaleCache  = "stale_cache"
	FallbackEmptySchema = "empty_schema"
	FallbackSample      = "sample"
)

// qualityChecks is the denominator of the project quality score.
const qualityChecks = 6

var projectDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
}

type projectService struct {
	sheets    ports.SheetService
	sheetID   string
	worksheet string
	now       func() time.Time
	log       zerolog.Logger
}

// NewProjectService creates the project sheet service. An empty sheetID
// serves sample data.
func NewProjectService(sheets ports.SheetService, sheetID, worksheet string, log zerolog.Logger) ports.ProjectService {
	return &projectService{
		sheets:    sheets,
		sheetID:   sheetID,
		worksheet: worksheet,
		now:       time.Now,
		log:       log,
	}
}

// Load reads the project table. On a data source failure the fallback table
// is returned together with the error.
func (s *projectService) Load(ctx context.Context, force bool) (ports.ProjectLoad, error) {
	if s.sheetID == "" {
		return ports.ProjectLoad{Table: domain.SampleProjects(), Fallback: FallbackSample, LoadedAt: s.now()}, nil
	}

	// A forced reload clears the cache first; the last good table is kept
	// aside so a failed reload can still serve it.
	var (
		stale     domain.Table
		haveStale bool
	)
	if force {
		stale, haveStale = s.sheets.Peek(s.sheetID, s.worksheet)
		s.sheets.Clear()
	}
	table, err := s.sheets.Get(ctx, s.sheetID, s.worksheet, !force)
	if err == nil {
		return ports.ProjectLoad{Table: table, LoadedAt: s.now()}, nil
	}

	load := ports.ProjectLoad{Error: err.Error(), LoadedAt: s.now()}
	if !force {
		stale, haveStale = s.sheets.Peek(s.sheetID, s.worksheet)
	}
	if haveStale {
		load.Table = stale
		load.Fallback = FallbackStaleCache
	} else {
		load.Table = domain.EmptyTable(domain.ProjectColumns)
		load.Fallback = FallbackEmptySchema
	}
	s.log.Warn().Err(err).
		Str("source", s.sheetID).
		Str("worksheet", s.worksheet).
		Str("fallback", load.Fallback).
		Msg("projects: load failed, serving fallback")
	return load, err
}

// AddProject appends one project row in the sheet's column order and
// reloads the table.
func (s *projectService) AddProject(ctx context.Context, fields map[string]any) (ports.ProjectLoad, error) {
	if s.sheetID == "" {
		return ports.ProjectLoad{}, apperror.Validation("No sheet configured for projects")
	}

	var missing []string
	for _, f := range domain.ProjectRequiredFields {
		if strings.TrimSpace(cellString(fields[f])) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return ports.ProjectLoad{}, apperror.Validation("Please fill in required fields: " + strings.Join(missing, ", "))
	}

	columns := domain.ProjectColumns
	if current, err := s.sheets.Get(ctx, s.sheetID, s.worksheet, true); err == nil && len(current.Columns) > 0 {
		columns = current.Columns
	}

	row := make([]any, len(columns))
	for i, c := range columns {
		switch v := fields[c].(type) {
		case nil:
			row[i] = ""
		case time.Time:
			row[i] = v.Format("2006-01-02")
		default:
			row[i] = v
		}
	}

	if !s.sheets.AppendRow(ctx, s.sheetID, row, s.worksheet) {
		return ports.ProjectLoad{}, apperror.ErrDataSource(errors.New("failed to add project to sheet"))
	}
	s.log.Info().Str("source", s.sheetID).Str("project", cellString(fields[domain.ColProjectName])).Msg("projects: project added")

	return s.Load(ctx, true)
}

// SaveProjects writes the whole edited table back to the sheet.
func (s *projectService) SaveProjects(ctx context.Context, table domain.Table) error {
	if s.sheetID == "" {
		return apperror.Validation("No sheet configured for projects")
	}
	if !s.sheets.UpdateTable(ctx, s.sheetID, table, s.worksheet) {
		return apperror.ErrDataSource(errors.New("failed to save changes"))
	}
	return nil
}

// Scan runs the project data-quality checks and scores the table out of 100.
func (s *projectService) Scan(table domain.Table, now time.Time) domain.QualityReport {
	report := domain.QualityReport{Issues: []string{}, Warnings: []string{}}

	if table.HasColumn(domain.ColProjectName) {
		missing, dups := 0, 0
		seen := make(map[string]bool)
		for _, r := range table.Rows {
			name := strings.TrimSpace(cellString(r[domain.ColProjectName]))
			if name == "" {
				missing++
				continue
			}
			if seen[name] {
				dups++
			}
			seen[name] = true
		}
		if missing > 0 {
			report.Issues = append(report.Issues, fmt.Sprintf("%d projects missing names.", missing))
		}
		if dups > 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%d duplicate project names.", dups))
		}
	}

	if table.HasColumn(domain.ColStatus) {
		missing := 0
		for _, r := range table.Rows {
			if strings.TrimSpace(cellString(r[domain.ColStatus])) == "" {
				missing++
			}
		}
		if missing > 0 {
			report.Issues = append(report.Issues, fmt.Sprintf("%d projects missing status.", missing))
		}
	}

	if table.HasColumn(domain.ColStartDate) && table.HasColumn(domain.ColDueDate) {
		invalid, overdue := 0, 0
		for _, r := range table.Rows {
			if _, ok := parseDate(r[domain.ColStartDate]); !ok {
				invalid++
			}
			due, ok := parseDate(r[domain.ColDueDate])
			if !ok {
				invalid++
				continue
			}
			status := strings.ToLower(cellString(r[domain.ColStatus]))
			if due.Before(now) && !strings.Contains(status, "completed") && !strings.Contains(status, "cancelled") {
				overdue++
			}
		}
		if invalid > 0 {
			report.Issues = append(report.Issues, fmt.Sprintf("%d projects with invalid start/due dates.", invalid))
		}
		if overdue > 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%d projects are currently overdue.", overdue))
		}
	}

	if table.HasColumn(domain.ColBudget) && table.HasColumn(domain.ColActualCost) {
		negBudget, negCost, overBudget := false, false, 0
		for _, r := range table.Rows {
			budget, budgetOK := parseNumber(r[domain.ColBudget])
			cost, costOK := parseNumber(r[domain.ColActualCost])
			if budgetOK && budget < 0 {
				negBudget = true
			}
			if costOK && cost < 0 {
				negCost = true
			}
			status := strings.ToLower(cellString(r[domain.ColStatus]))
			if budgetOK && costOK && cost > budget && strings.Contains(status, "completed") {
				overBudget++
			}
		}
		if negBudget {
			report.Issues = append(report.Issues, "Negative budget values found.")
		}
		if negCost {
			report.Issues = append(report.Issues, "Negative actual cost values found.")
		}
		if overBudget > 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%d completed projects are over budget.", overBudget))
		}
	}

	passed := qualityChecks - len(report.Issues) - len(report.Warnings)
	if passed < 0 {
		passed = 0
	}
	report.Score = float64(passed) / qualityChecks * 100
	return report
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format("2006-01-02")
	}
	return fmt.Sprint(v)
}

func parseDate(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, !t.IsZero()
	}
	s := strings.TrimSpace(cellString(v))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range projectDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	s := strings.TrimSpace(strings.ReplaceAll(cellString(v), ",", ""))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
