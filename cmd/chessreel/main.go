// chessreel turns a sequence of saved chess-board HTML snapshots into an
// animated GIF and a side-by-side composite PNG.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chessreel/pkg/config"
	"chessreel/pkg/logging"
	"chessreel/pkg/reel"
	"chessreel/pkg/render"
	"chessreel/pkg/snapshot"
	"chessreel/pkg/text"
)

var (
	configPath string
	duration   time.Duration
	backend    string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chessreel [flags] <snapshot.html>... <out.gif> <composite.png>",
	Short: "Render chess-board HTML snapshots into a GIF and a composite PNG",
	Long: `chessreel scrapes the board squares and game metadata out of each HTML
snapshot, draws one 900x750 frame per snapshot and writes the frames, in
argument order, as an animated GIF and a horizontal composite PNG.

Snapshots that cannot be read or rendered are logged and skipped.`,
	Args: cobra.MinimumNArgs(3),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.Flags().DurationVar(&duration, "duration", config.DefaultDuration, "How long each frame is shown in the GIF")
	rootCmd.Flags().StringVar(&backend, "backend", "auto", "Rendering backend: auto, gg or none")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	asm, err := newAssembler(cfg)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	n := len(args)
	inputs, gifPath, compositePath := args[:n-2], args[n-2], args[n-1]
	logger.Debug("starting run",
		zap.Int("snapshots", len(inputs)),
		zap.String("gif", gifPath),
		zap.String("composite", compositePath),
		zap.String("backend", cfg.Backend),
		zap.Duration("duration", cfg.Duration))

	res := asm.Assemble(inputs, gifPath, compositePath)
	logger.Debug("run finished",
		zap.Int("frames", res.Frames),
		zap.Int("skipped", len(res.Skipped)),
		zap.Bool("placeholder", res.Placeholder))
	return nil
}

// loadConfig reads the config file, if any, and applies flags that were set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("duration") {
		cfg.Duration = duration
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newAssembler(cfg *config.Config) (*reel.Assembler, error) {
	matcher, err := cfg.SquareMatcher()
	if err != nil {
		return nil, err
	}

	faces, err := text.LoadFaces(cfg.FontConfig(), text.DefaultSizes())
	if err != nil {
		logger.Warn("falling back to the built-in bitmap font", zap.Error(err))
	}

	b := render.NewBackend(cfg.Backend)
	return &reel.Assembler{
		Backend:   b,
		Extractor: snapshot.NewExtractor(matcher),
		Renderer:  render.NewRenderer(b, faces, cfg.Title),
		Logger:    logger,
		Duration:  cfg.Duration,
	}, nil
}
