package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/imishinist/tplgen/internal/config"
	"github.com/imishinist/tplgen/internal/params"
	"github.com/imishinist/tplgen/internal/prompt"
	"github.com/imishinist/tplgen/internal/template"
)

// Overridden in tests.
var (
	newPrompter   = prompt.NewSurvey
	isInteractive = func() bool { return prompt.IsTerminal(os.Stdin) }
)

func render(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel()}))

	// Parse flags
	fromFiles, _ := cmd.Flags().GetStringArray("from-file")
	list, _ := cmd.Flags().GetBool("list")

	path := args[0]
	tpl, err := template.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded template", "path", path, "bytes", len(tpl.Text))

	if list {
		names, err := tpl.Names()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	paramMap, err := loadParams(cfg, fromFiles, args[1:], logger)
	if err != nil {
		return err
	}

	if cfg.Prompt {
		if paramMap, err = promptMissing(cmd.Context(), tpl, paramMap, logger); err != nil {
			return err
		}
	}

	rendered, err := tpl.Render(paramMap)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}

func promptMissing(ctx context.Context, tpl *template.Template, paramMap params.Params, logger *slog.Logger) (params.Params, error) {
	names, err := tpl.Names()
	if err != nil {
		return nil, err
	}

	missing := paramMap.Missing(names)
	if len(missing) == 0 {
		return paramMap, nil
	}
	if !isInteractive() {
		logger.Debug("stdin is not a terminal, not prompting", "missing", missing)
		return paramMap, nil
	}

	answers, err := prompt.Ask(ctx, newPrompter(), missing)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters: %w", err)
	}

	return params.Merge(paramMap, answers), nil
}
