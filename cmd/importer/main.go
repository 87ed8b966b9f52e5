package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/openhris/timeclock-import-go/internal/config"
	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
	"github.com/openhris/timeclock-import-go/internal/pkg/database"
	"github.com/openhris/timeclock-import-go/internal/repository/postgresql"
	timeclockService "github.com/openhris/timeclock-import-go/internal/service/timeclock"
)

var (
	flagMonth int
	flagYear  int
	flagHint  string
	flagActor string
)

var rootCmd = &cobra.Command{
	Use:   "timeclock-import",
	Short: "Import vendor time-clock export files into attendance days",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var importCmd = &cobra.Command{
	Use:   "import [flags] <file>",
	Short: "Parse a time-clock file and persist one attendance day per employee and date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(args[0], false)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [flags] <file>",
	Short: "Run the full pipeline without writing, to vet a file before importing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(args[0], true)
	},
}

func runBatch(path string, preview bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := log.InfoLevel
	if cfg.App.LogLevel == "debug" {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "timeclock-import",
		Level:           level,
	})

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceDayRepository(db)
	service := timeclockService.NewImportService(
		logger,
		employeeRepo,
		attendanceRepo,
		cfg.Import.WeekendLabels,
		cfg.Import.StandardDayHours,
	)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	req := timeclock.ImportRequest{
		FileName: filepath.Base(path),
		Data:     data,
		Hint:     flagHint,
		Month:    flagMonth,
		Year:     flagYear,
		ActorID:  flagActor,
	}

	ctx := context.Background()
	var report timeclock.ImportReport
	if preview {
		report, err = service.Preview(ctx, req)
	} else {
		report, err = service.Import(ctx, req)
	}
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func main() {
	for _, cmd := range []*cobra.Command{importCmd, previewCmd} {
		cmd.Flags().IntVar(&flagMonth, "month", 0, "reporting month (1-12)")
		cmd.Flags().IntVar(&flagYear, "year", 0, "reporting year")
		cmd.Flags().StringVar(&flagHint, "hint", "", "declared layout hint: monthly or daily")
		cmd.Flags().StringVar(&flagActor, "actor", "", "acting user id recorded on imported rows")
		_ = cmd.MarkFlagRequired("month")
		_ = cmd.MarkFlagRequired("year")
		rootCmd.AddCommand(cmd)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
