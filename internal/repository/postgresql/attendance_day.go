package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
	"github.com/openhris/timeclock-import-go/internal/pkg/database"
)

type attendanceDayRepository struct {
	db *database.DB
}

func NewAttendanceDayRepository(db *database.DB) timeclock.AttendanceDayRepository {
	return &attendanceDayRepository{db: db}
}

// UpsertDay implements timeclock.AttendanceDayRepository.
//
// (employee_id, date) is the conflict key, so re-importing the same file is
// a no-op in effect: the row keeps its id and created_at, every payload
// column is overwritten with identical values.
func (r *attendanceDayRepository) UpsertDay(ctx context.Context, day timeclock.AttendanceDay) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate attendance day id: %w", err)
	}

	query := `
		INSERT INTO attendance_days (
			id, employee_id, date, status, overtime_hours, shift_label,
			check_in, check_out, imported_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			overtime_hours = EXCLUDED.overtime_hours,
			shift_label = EXCLUDED.shift_label,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			imported_by = EXCLUDED.imported_by,
			updated_at = NOW()
	`

	_, err = r.db.Exec(ctx, query,
		id.String(),
		day.EmployeeID,
		day.Date,
		string(day.Status),
		day.OvertimeHours.String(),
		day.ShiftLabel,
		day.CheckIn,
		day.CheckOut,
		day.ImportedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance day: %w", err)
	}

	return nil
}
