package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/limaJavier/orblocks/internal/config"
	"github.com/limaJavier/orblocks/pkg/instance"
	"github.com/limaJavier/orblocks/pkg/model"
	"github.com/limaJavier/orblocks/pkg/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func feasibilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feasibility",
		Short: "Count the feasible (room, day, shift) blocks of every patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			problem, err := loadProblem(cmd, cfg, logger)
			if err != nil {
				return err
			}

			//** Compute feasible blocks
			engine, workers := newEngine(cfg, logger)
			start := time.Now()
			counts := engine.FeasibleBlocks(problem)
			logger.Info().Dur("elapsed", time.Since(start)).Int("workers", workers).Msg("feasibility computed")

			verify, _ := cmd.Flags().GetBool("verify")
			if verify && !model.Verify(problem, counts) {
				return codedError{code: exitUnverified, err: errors.New("verification of feasible blocks failed")}
			}

			//** Materialize report
			rows := report.Materialize(problem.Patients, counts)
			summary := report.Summarize(rows)
			logger.Info().
				Int("patients", summary.Patients).
				Int("feasible", summary.Feasible).
				Int("infeasible", summary.Infeasible).
				Int("total_blocks", summary.TotalBlocks).
				Msg("report materialized")

			format, _ := cfg.OutputFormat()
			outFile, _ := cmd.Flags().GetString("out")
			if err := writeOutput(cmd.OutOrStdout(), outFile, func(w io.Writer) error { return report.Write(w, format, rows) }); err != nil {
				return fmt.Errorf("an error occurred while writing the report: %w", err)
			}

			candidatesFile, _ := cmd.Flags().GetString("candidates")
			if candidatesFile != "" {
				candidates := engine.Candidates(problem)
				if err := writeOutput(cmd.OutOrStdout(), candidatesFile, func(w io.Writer) error { return report.WriteCandidatesCSV(w, candidates) }); err != nil {
					return fmt.Errorf("an error occurred while writing the candidates: %w", err)
				}
				logger.Info().Int("candidates", len(candidates)).Str("file", candidatesFile).Msg("candidates written")
			}
			return nil
		},
	}

	cmd.Flags().String("file", "", "Path to the instance file (.dat or .json)")
	cmd.Flags().String("out", "", "Path to the file where the report will be written; if empty, it'll be written into the Standard Output")
	cmd.Flags().String("format", string(report.CSV), "Report format: csv or json")
	cmd.Flags().Int("capacity", model.DefaultCapacityMinutes, "Minutes available per shift")
	cmd.Flags().Int("cleanup", model.DefaultCleanupMinutes, "Cleanup minutes required after every surgery")
	cmd.Flags().Int("workers", 1, "Number of workers; 0 uses one per CPU")
	cmd.Flags().String("surgeon-layout", instance.DayMajor.String(), "Surgeon availability layout: day ([day][surgeon][shift]) or entity ([surgeon][day][shift])")
	cmd.Flags().String("candidates", "", "Path to a CSV file listing every feasible (patient, room, day, shift)")
	cmd.Flags().Bool("verify", false, "Cross-check the counts against a full scan of the room calendar")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that an instance file is complete and consistent",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			problem, err := loadProblem(cmd, cfg, logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "patients: %d, surgeons: %d, rooms: %d, days: %d, open blocks: %d\n",
				problem.Patients.Len(),
				problem.Surgeons.Surgeons(),
				problem.Rooms.Rooms(),
				problem.Rooms.Days(),
				problem.Rooms.OpenBlocks(),
			)
			return nil
		},
	}

	cmd.Flags().String("file", "", "Path to the instance file (.dat or .json)")
	cmd.Flags().String("surgeon-layout", instance.DayMajor.String(), "Surgeon availability layout: day or entity")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), codedError{code: exitInvalidInput, err: err}
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger, nil
}

func newLogger(cfg *config.Config, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	if !cfg.JsonLogs {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	}
	return logger.Level(level), nil
}

// loadProblem reads, validates and builds the instance; structural errors abort before any engine runs
func loadProblem(cmd *cobra.Command, cfg *config.Config, logger zerolog.Logger) (model.Problem, error) {
	file, _ := cmd.Flags().GetString("file")
	layout, _ := cfg.Layout()

	input, err := instance.Load(file, instance.Options{SurgeonLayout: layout, Logger: &logger})
	if err != nil {
		if isInvalidInput(err) {
			return model.Problem{}, codedError{code: exitInvalidInput, err: fmt.Errorf("invalid instance %v: %w", file, err)}
		}
		return model.Problem{}, fmt.Errorf("cannot load instance %v: %w", file, err)
	}

	problem, err := model.Build(input, cfg.Model())
	if err != nil {
		return model.Problem{}, codedError{code: exitInvalidInput, err: err}
	}

	logger.Info().
		Str("file", file).
		Int("patients", problem.Patients.Len()).
		Int("open_blocks", problem.Rooms.OpenBlocks()).
		Msg("instance loaded")
	return problem, nil
}

func isInvalidInput(err error) bool {
	var missing instance.MissingFieldError
	var shape instance.ShapeMismatchError
	var value instance.InvalidValueError
	return errors.As(err, &missing) || errors.As(err, &shape) || errors.As(err, &value)
}

// newEngine returns the engine along with the number of workers it actually runs
func newEngine(cfg *config.Config, logger zerolog.Logger) (model.FeasibilityEngine, int) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 {
		return model.NewSequentialEngine(logger), workers
	}
	return model.NewParallelEngine(workers, logger), workers
}

// writeOutput writes into the file, or into stdout when file is empty
func writeOutput(stdout io.Writer, file string, write func(w io.Writer) error) error {
	if file == "" {
		return write(stdout)
	}

	out, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
