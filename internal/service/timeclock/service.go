package timeclock

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/openhris/timeclock-import-go/internal/domain/employee"
	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
)

type ImportServiceImpl struct {
	logger     *log.Logger
	classifier *classifier
	employee.EmployeeRepository
	timeclock.AttendanceDayRepository
}

func NewImportService(
	logger *log.Logger,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo timeclock.AttendanceDayRepository,
	weekendLabels []string,
	standardDayHours int,
) timeclock.ImportService {
	return &ImportServiceImpl{
		logger:                  logger,
		classifier:              newClassifier(weekendLabels, standardDayHours),
		EmployeeRepository:      employeeRepo,
		AttendanceDayRepository: attendanceRepo,
	}
}

// Import implements timeclock.ImportService.
func (s *ImportServiceImpl) Import(ctx context.Context, req timeclock.ImportRequest) (timeclock.ImportReport, error) {
	return s.run(ctx, req, true)
}

// Preview implements timeclock.ImportService.
func (s *ImportServiceImpl) Preview(ctx context.Context, req timeclock.ImportRequest) (timeclock.ImportReport, error) {
	return s.run(ctx, req, false)
}

func (s *ImportServiceImpl) run(ctx context.Context, req timeclock.ImportRequest, persist bool) (timeclock.ImportReport, error) {
	if err := req.Validate(); err != nil {
		return timeclock.ImportReport{}, err
	}

	rows, err := decodeRows(req.Data)
	if err != nil {
		return timeclock.ImportReport{}, fmt.Errorf("%w: %v", timeclock.ErrUnrecognizedLayout, err)
	}

	// Registry snapshot: loaded once per batch, read-only afterwards.
	registry, err := s.EmployeeRepository.GetAllActive(ctx)
	if err != nil {
		return timeclock.ImportReport{}, fmt.Errorf("failed to load employee registry: %w", err)
	}
	index := employee.NewIndex(registry)

	raws, period := s.detect(rows, req)
	if len(raws) == 0 {
		return timeclock.ImportReport{}, timeclock.ErrUnrecognizedLayout
	}

	s.logger.Info("parsed time-clock file",
		"file", req.FileName,
		"rows", len(rows),
		"records", len(raws),
		"period", fmt.Sprintf("%02d/%04d", period.Month, period.Year),
	)

	report := timeclock.ImportReport{
		Errors:   []timeclock.RowIssue{},
		Warnings: []timeclock.RowIssue{},
		Period:   period,
	}

	// Normalize every raw row; a bad row is recorded and skipped, never
	// fatal.
	byCode := make(map[string][]timeclock.AttendanceRecord)
	var codeOrder []string
	for _, raw := range raws {
		record, err := normalizeRecord(raw, period)
		if err != nil {
			report.FailedCount++
			report.Errors = append(report.Errors, timeclock.RowIssue{
				Row:          raw.Row,
				EmployeeCode: raw.EmployeeCode,
				Message:      err.Error(),
			})
			continue
		}
		if _, seen := byCode[record.EmployeeCode]; !seen {
			codeOrder = append(codeOrder, record.EmployeeCode)
		}
		byCode[record.EmployeeCode] = append(byCode[record.EmployeeCode], record)
	}

	for _, code := range codeOrder {
		days := byCode[code]
		// Ascending date order keeps overtime and weekend handling
		// deterministic for each employee.
		sort.SliceStable(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

		outcome := timeclock.EmployeeOutcome{EmployeeCode: code, EmployeeName: days[0].EmployeeName}

		resolved, ok := index.Resolve(code)
		if !ok {
			// The whole employee is skipped; every one of its days
			// counts as failed at the canonical day granularity.
			report.FailedCount += len(days)
			outcome.Failed = len(days)
			outcome.State = timeclock.OutcomeFullyFailed
			report.Errors = append(report.Errors, timeclock.RowIssue{
				Row:          days[0].Row,
				EmployeeCode: code,
				Message:      employee.ErrEmployeeNotFound.Error(),
			})
			report.Employees = append(report.Employees, outcome)
			continue
		}
		if outcome.EmployeeName == "" {
			outcome.EmployeeName = resolved.FullName
		}

		for _, day := range days {
			classified, warnings := s.classifier.Classify(day)
			for _, w := range warnings {
				report.Warnings = append(report.Warnings, timeclock.RowIssue{
					Row:          day.Row,
					EmployeeCode: code,
					Message:      w,
				})
			}

			if persist {
				err := s.AttendanceDayRepository.UpsertDay(ctx, timeclock.AttendanceDay{
					EmployeeID:    resolved.ID,
					Date:          day.Date,
					Status:        classified.Status,
					OvertimeHours: classified.OvertimeHours,
					ShiftLabel:    day.ShiftCode,
					CheckIn:       day.CheckIn,
					CheckOut:      day.CheckOut,
					ImportedBy:    req.ActorID,
				})
				if err != nil {
					// One bad day never blocks its siblings.
					report.FailedCount++
					outcome.Failed++
					report.Errors = append(report.Errors, timeclock.RowIssue{
						Row:          day.Row,
						EmployeeCode: code,
						Message:      fmt.Sprintf("failed to persist day %s: %v", day.Date.Format("2006-01-02"), err),
					})
					continue
				}
			}

			report.SuccessCount++
			outcome.Succeeded++
		}

		switch {
		case outcome.Failed > 0:
			outcome.State = timeclock.OutcomePartiallyFailed
		case outcome.Succeeded > 0:
			outcome.State = timeclock.OutcomeSucceeded
		default:
			outcome.State = timeclock.OutcomeFullyFailed
		}
		report.Employees = append(report.Employees, outcome)
	}

	s.logger.Info("reconciliation finished",
		"succeeded", report.SuccessCount,
		"failed", report.FailedCount,
		"employees", len(report.Employees),
		"persisted", persist,
	)

	return report, nil
}

// detect runs the parser cascade. The two specialized parsers go first (the
// hint only reorders them); the generic mapper is a last resort because the
// specialized layouts can coincidentally satisfy its weaker heuristics.
func (s *ImportServiceImpl) detect(rows [][]string, req timeclock.ImportRequest) ([]timeclock.RawRecord, timeclock.Period) {
	period := timeclock.Period{Month: req.Month, Year: req.Year}

	type attempt func() ([]timeclock.RawRecord, timeclock.Period)

	grid := func() ([]timeclock.RawRecord, timeclock.Period) {
		return parseMonthlyGrid(rows, period)
	}
	detail := func() ([]timeclock.RawRecord, timeclock.Period) {
		return parseDetailBlocks(rows), period
	}

	order := []attempt{detail, grid}
	if req.Hint == timeclock.HintMonthly {
		order = []attempt{grid, detail}
	}

	for _, parse := range order {
		if records, p := parse(); len(records) > 0 {
			return records, p
		}
	}

	s.logger.Debug("specialized parsers found no structural signature, trying generic mapper", "file", req.FileName)
	return parseGeneric(rows), period
}
