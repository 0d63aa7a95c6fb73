package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rankdict/internal/config"
	"rankdict/internal/corpus"
	"rankdict/internal/countstore"
	"rankdict/internal/runlock"
)

func newCountCommand(ctx *commandContext) *cobra.Command {
	countCmd := &cobra.Command{
		Use:   "count <source> <file>...",
		Short: "Accumulate corpus token counts for a source",
		Long: `Count tokenizes raw corpus text (whitespace split, Unicode case folding)
and accumulates per-token counts for the named source in the count database.
Counts add up across invocations, so a large corpus can be processed in
pieces. Use "count export" to emit the frequency file the build step reads.
Pass "-" as a file to read stdin.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(ctx, cmd, args[0], args[1:])
		},
	}

	countCmd.AddCommand(newCountExportCommand(ctx))
	countCmd.AddCommand(newCountResetCommand(ctx))
	countCmd.AddCommand(newCountSourcesCommand(ctx))
	return countCmd
}

func runCount(ctx *commandContext, cmd *cobra.Command, source string, files []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger := ctx.ensureLogger().With(slog.String("source", source))

	lock, err := runlock.Acquire(cfg.Paths.DataDir)
	if err != nil {
		return err
	}
	defer lock.Release()

	store, err := countstore.Open(cfg.Paths.CountDB)
	if err != nil {
		return err
	}
	defer store.Close()

	counter := corpus.NewCounter(0, func(flushCtx context.Context, counts map[string]int) error {
		return store.Add(flushCtx, source, counts)
	})

	for _, file := range files {
		reader, closer, err := openCorpusFile(cmd, file)
		if err != nil {
			return err
		}
		consumeErr := counter.Consume(cmd.Context(), reader)
		if closer != nil {
			closer()
		}
		if consumeErr != nil {
			return fmt.Errorf("count %s: %w", file, consumeErr)
		}
		logger.Debug("counted corpus file", slog.String("file", file))
	}
	if err := counter.Flush(cmd.Context()); err != nil {
		return err
	}

	logger.Info("accumulated corpus counts",
		slog.Int64("tokens", counter.Tokens()),
		slog.String("db", store.Path()))
	fmt.Fprintf(cmd.OutOrStdout(), "Counted %d tokens into source %q\n", counter.Tokens(), source)
	return nil
}

func openCorpusFile(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "-" {
		return cmd.InOrStdin(), nil, nil
	}
	expanded, err := config.ExpandPath(name)
	if err != nil {
		return nil, nil, err
	}
	file, err := os.Open(expanded)
	if err != nil {
		return nil, nil, fmt.Errorf("open corpus file: %w", err)
	}
	return file, func() { file.Close() }, nil
}

func newCountExportCommand(ctx *commandContext) *cobra.Command {
	var pathFlag string

	cmd := &cobra.Command{
		Use:   "export <source>",
		Short: "Write a source's counts as a frequency file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			source := args[0]

			target := strings.TrimSpace(pathFlag)
			if target == "" {
				target = filepath.Join(cfg.Paths.DataDir, source+".txt")
			} else if target, err = config.ExpandPath(target); err != nil {
				return err
			}

			store, err := countstore.Open(cfg.Paths.CountDB)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Export(cmd.Context(), source, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tokens to %s\n", n, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Destination file (default: <data_dir>/<source>.txt)")
	return cmd
}

func newCountResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <source>",
		Short: "Discard a source's accumulated counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := countstore.Open(cfg.Paths.CountDB)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Reset(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset counts for source %q\n", args[0])
			return nil
		},
	}
}

func newCountSourcesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List sources with accumulated counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := countstore.Open(cfg.Paths.CountDB)
			if err != nil {
				return err
			}
			defer store.Close()

			sources, err := store.Sources(cmd.Context())
			if err != nil {
				return err
			}
			if len(sources) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No counted sources")
				return nil
			}
			for _, source := range sources {
				fmt.Fprintln(cmd.OutOrStdout(), source)
			}
			return nil
		},
	}
}
