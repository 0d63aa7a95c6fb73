package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"rankdict/internal/config"
	"rankdict/internal/consolidate"
	"rankdict/internal/freqlist"
	"rankdict/internal/runlock"
	"rankdict/internal/serialize"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var dataDirFlag string
	var outputFlag string
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Consolidate frequency lists into the dictionary artifact",
		Long: `Build loads every configured frequency list from the data directory,
resolves cross-list duplicates by keeping each token in the list where it
ranks best, applies the exclusion heuristics, truncates each list to its
configured size, and writes the consolidated artifact.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dataDir, outputFile, format, err := buildTargets(cfg, dataDirFlag, outputFlag, formatFlag)
			if err != nil {
				return err
			}

			logger := ctx.ensureLogger().With(slog.String("run_id", uuid.NewString()))

			lock, err := runlock.Acquire(dataDir)
			if err != nil {
				return err
			}
			defer lock.Release()

			rules := freqlist.Rules{MinTokenLength: cfg.Filter.MinTokenLength}
			lists, err := freqlist.LoadDir(dataDir, cfg.DictionaryNames(), rules, logger)
			if err != nil {
				return err
			}
			for _, list := range lists {
				logger.Debug("loaded frequency list",
					slog.String("dictionary", list.Name), slog.Int("tokens", len(list.Ranks)))
			}

			result := consolidate.Run(lists, consolidate.Options{
				Capacities: cfg.Capacities(),
				Thresholds: consolidate.Thresholds{
					MinGuessesBeforeGrowing: cfg.Filter.MinGuessesBeforeGrowing,
					PrefixMultiplier:        cfg.Filter.PrefixMultiplier,
					MinPrefixLength:         cfg.Filter.MinPrefixLength,
				},
			})

			if err := serialize.Write(outputFile, format, cfg.DictionaryNames(), result.Lists); err != nil {
				return err
			}
			logger.Info("wrote dictionary artifact",
				slog.String("path", outputFile),
				slog.String("format", format),
				slog.Int("lists", len(result.Stats)))

			writeBuildSummary(cmd.OutOrStdout(), result.Stats, stdoutIsTerminal())
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDirFlag, "data-dir", "", "Directory of frequency files (overrides config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Artifact destination (overrides config)")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Artifact format: coffee or json (overrides config)")
	return cmd
}

func buildTargets(cfg *config.Config, dataDirFlag, outputFlag, formatFlag string) (dataDir, outputFile, format string, err error) {
	dataDir = cfg.Paths.DataDir
	if flag := strings.TrimSpace(dataDirFlag); flag != "" {
		if dataDir, err = config.ExpandPath(flag); err != nil {
			return "", "", "", err
		}
	}
	outputFile = cfg.Paths.OutputFile
	if flag := strings.TrimSpace(outputFlag); flag != "" {
		if outputFile, err = config.ExpandPath(flag); err != nil {
			return "", "", "", err
		}
	}
	format = cfg.Output.Format
	if flag := strings.ToLower(strings.TrimSpace(formatFlag)); flag != "" {
		format = flag
	}
	switch format {
	case "coffee", "json":
	default:
		return "", "", "", fmt.Errorf("output format: unsupported value %q (expected coffee or json)", format)
	}
	return dataDir, outputFile, format, nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeBuildSummary prints per-list statistics: a table for humans, plain
// tab-separated lines when output is redirected.
func writeBuildSummary(out io.Writer, stats []consolidate.ListStats, tty bool) {
	if tty {
		headers := []string{"Dictionary", "Loaded", "Owned", "Dominated", "Kept", "Cap"}
		rows := make([][]string, 0, len(stats))
		for _, s := range stats {
			rows = append(rows, []string{
				s.Name,
				strconv.Itoa(s.Loaded),
				strconv.Itoa(s.Owned),
				strconv.Itoa(s.Dominated),
				strconv.Itoa(s.Kept),
				formatCapacity(s.Capacity),
			})
		}
		aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}
		fmt.Fprintln(out, renderTable(headers, rows, aligns))
		return
	}
	for _, s := range stats {
		fmt.Fprintf(out, "%s\tloaded=%d\towned=%d\tdominated=%d\tkept=%d\tcap=%s\n",
			s.Name, s.Loaded, s.Owned, s.Dominated, s.Kept, formatCapacity(s.Capacity))
	}
}

func formatCapacity(capacity int) string {
	if capacity <= 0 {
		return "-"
	}
	return strconv.Itoa(capacity)
}
