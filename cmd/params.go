package cmd

import (
	"log/slog"

	"github.com/imishinist/tplgen/internal/config"
	"github.com/imishinist/tplgen/internal/params"
	"github.com/imishinist/tplgen/internal/parser"
)

// loadParams layers the configured parameters file, each --from-file in
// order, and the name=value arguments. Later layers win.
func loadParams(cfg *config.Config, fromFiles []string, args []string, logger *slog.Logger) (params.Params, error) {
	files := fromFiles
	if cfg.ParamsFile != "" {
		files = append([]string{cfg.ParamsFile}, fromFiles...)
	}

	layers := make([]params.Params, 0, len(files)+1)
	for _, file := range files {
		paramMap, err := parser.ParseParamsFile(file)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded parameters file", "path", file, "count", len(paramMap))
		layers = append(layers, paramMap)
	}

	fromArgs := params.Parse(args)
	logger.Debug("parsed parameter arguments", "count", len(fromArgs))
	layers = append(layers, fromArgs)

	return params.Merge(layers...), nil
}
