package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ipsgen/ipsgen/internal/catalog"
	"github.com/ipsgen/ipsgen/internal/config"
	"github.com/ipsgen/ipsgen/internal/ips"
	"github.com/ipsgen/ipsgen/internal/platform/fhir"
	"github.com/ipsgen/ipsgen/internal/platform/httpapi"
	"github.com/ipsgen/ipsgen/internal/platform/middleware"
	"github.com/ipsgen/ipsgen/internal/platform/report"
	"github.com/ipsgen/ipsgen/internal/platform/store"
)

const version = "1.0.0"

// batchFlags are the generation parameters shared by the generate, report
// and load commands.
type batchFlags struct {
	patients int
	repeats  int
	seed     int64
}

func (f *batchFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.patients, "patients", "p", 1, "Number of patients to generate")
	cmd.Flags().IntVarP(&f.repeats, "repeats", "r", 1, "Records per patient")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed for reproducibility")
}

// seedArg returns the seed pointer for the batch: nil (entropy-seeded) unless
// --seed was given explicitly.
func (f *batchFlags) seedArg(cmd *cobra.Command) *int64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	return &f.seed
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "ipsgen",
		Short:         "Synthetic International Patient Summary (IPS) generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(loadCmd())
	rootCmd.AddCommand(aboutCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func loadCatalog(cfg *config.Config, path string) (*catalog.Catalog, error) {
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func generateCmd() *cobra.Command {
	var flags batchFlags
	var outputDir, catalogPath string
	var minify, ndjson bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate synthetic IPS document bundles as JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			cat, err := loadCatalog(cfg, catalogPath)
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}

			batch, err := ips.Generate(flags.patients, flags.repeats, flags.seedArg(cmd), cat)
			if err != nil {
				return err
			}

			logger.Info().
				Int("patients", flags.patients).
				Int("repeats", flags.repeats).
				Msg("generating records")

			if ndjson {
				w := fhir.NewNDJSONWriter(os.Stdout)
				for batch.Next() {
					if err := w.WriteDocument(batch.Record().Document); err != nil {
						return err
					}
				}
				if err := batch.Err(); err != nil {
					return err
				}
				return w.Flush()
			}

			writer, err := fhir.NewFileWriter(outputDir, minify || cfg.Minify)
			if err != nil {
				return err
			}
			count := 0
			for batch.Next() {
				if _, err := writer.WriteDocument(batch.Record().Document); err != nil {
					return err
				}
				count++
			}
			if err := batch.Err(); err != nil {
				return err
			}

			logger.Info().Int("count", count).Str("dir", outputDir).Msg("generation complete")
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to save JSON files")
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a JSON or YAML catalog file")
	cmd.Flags().BoolVar(&minify, "minify", false, "Output minified JSON")
	cmd.Flags().BoolVar(&ndjson, "ndjson", false, "Stream bundles to stdout as NDJSON instead of writing files")
	return cmd
}

func reportCmd() *cobra.Command {
	var flags batchFlags
	var outputDir, catalogPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate bundles and render each as a human-readable HTML report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			cat, err := loadCatalog(cfg, catalogPath)
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir %s: %w", outputDir, err)
			}

			batch, err := ips.Generate(flags.patients, flags.repeats, flags.seedArg(cmd), cat)
			if err != nil {
				return err
			}

			renderer := report.NewRenderer()
			count := 0
			for batch.Next() {
				name := fmt.Sprintf("ips_record_%04d.html", count)
				path := filepath.Join(outputDir, name)
				if err := renderer.RenderToFile(batch.Record().Document, path); err != nil {
					return err
				}
				count++
			}
			if err := batch.Err(); err != nil {
				return err
			}

			logger.Info().Int("count", count).Str("dir", outputDir).Msg("reports written")
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to save HTML reports")
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a JSON or YAML catalog file")
	return cmd
}

func serveCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the fixture service exposing generation over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			cat, err := loadCatalog(cfg, catalogPath)
			if err != nil {
				return err
			}

			e := echo.New()
			e.HideBanner = true
			e.HidePort = true

			e.Use(middleware.Recovery(logger))
			e.Use(middleware.RequestID())
			e.Use(middleware.Logger(logger))

			handler := httpapi.NewHandler(cat, logger)
			handler.RegisterRoutes(e.Group(""))

			logger.Info().Str("port", cfg.Port).Msg("fixture service listening")
			if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a JSON or YAML catalog file")
	return cmd
}

func loadCmd() *cobra.Command {
	var flags batchFlags
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Generate bundles and load them into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required for load")
			}

			cat, err := loadCatalog(cfg, catalogPath)
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := store.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			bundles := store.NewBundleStore(pool)
			if err := bundles.EnsureSchema(ctx); err != nil {
				return err
			}

			batch, err := ips.Generate(flags.patients, flags.repeats, flags.seedArg(cmd), cat)
			if err != nil {
				return err
			}

			count := 0
			for batch.Next() {
				if err := bundles.Insert(ctx, batch.Record()); err != nil {
					return err
				}
				count++
			}
			if err := batch.Err(); err != nil {
				return err
			}

			logger.Info().Int("count", count).Msg("bundles loaded")
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a JSON or YAML catalog file")
	return cmd
}

func aboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show tool information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ipsgen: Synthetic International Patient Summary (IPS) Generator")
			fmt.Printf("├─ version:  %s\n", version)
			fmt.Println("└─ licence:  MIT https://opensource.org/licenses/MIT")
		},
	}
}
