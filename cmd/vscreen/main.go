package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/codes"
	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/enrich"
	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/history"
	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/render"
	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/screen"
	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// defaultCodes seeds a run when no codes are given at all.
const defaultCodes = "7203\n6758\n9984\n8035\n4063\n9432"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vscreen [codes...]",
		Short: "Screen TSE codes for early volume breakout candidates",
		Long: "vscreen fetches daily bars per symbol from Yahoo Finance and keeps\n" +
			"symbols with a gradual volume build-up, a single-day volume spike and\n" +
			"a day change that has not run yet. Bare 4-digit codes get the .T suffix.",
		SilenceUsage: true,
		RunE:         run,
	}

	f := cmd.Flags()
	f.String("config", "", "optional YAML config file")
	f.String("codes-file", "", "YAML or plain-text file with codes")
	f.Int("lookback", 160, "history window in calendar days (60-260)")
	f.Int("recent", 5, "recent volume window in trading days (3-10)")
	f.Int("base", 20, "base volume window in trading days (10-60)")
	f.Float64("min-recent-ratio", 1.5, "recent/base volume ratio floor (1.0-5.0)")
	f.Int("spike", 20, "spike comparison window in trading days (10-60)")
	f.Float64("min-spike-ratio", 3.0, "today/spike-base volume ratio floor (1.0-10.0)")
	f.Float64("max-day-change", 5, "day change percent ceiling (1-15)")
	f.Float64("min-base-volume", 100000, "base average volume floor")
	f.Int("top", 50, "result count limit (10-200)")
	f.String("format", "table", "output format: table, csv or json")
	f.String("out", "", "CSV export path (default "+render.ExportFilename+" with --export)")
	f.Bool("export", false, "write the CSV export file after the run")
	f.Bool("names", false, "look up company names for passing symbols")
	f.Bool("color", true, "colorize the day change column")
	f.Bool("pretty", false, "indent JSON output")
	f.Int("max-col-width", 0, "max table column width (0 = auto)")
	f.BoolP("verbose", "v", false, "debug logging, including per-symbol skip reasons")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	viper.SetEnvPrefix("VSCREEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	setupLogging(viper.GetBool("verbose"))

	params := paramsFromConfig()
	if err := params.Validate(); err != nil {
		return err
	}

	symbols, err := collectCodes(args)
	if err != nil {
		return err
	}

	src := history.NewCacheSource(history.NewYahooSource())
	scr := &screen.Screener{
		Source: src,
		Params: params,
		OnProgress: func(current, total int, sym string) {
			fmt.Fprintf(os.Stderr, "\r%d/%d %s    ", current, total, sym)
			if current == total {
				fmt.Fprint(os.Stderr, "\r\033[K")
			}
		},
	}

	log.Info().Int("symbols", len(symbols)).Msg("screening")
	rows, sum, err := scr.Run(cmd.Context(), symbols)
	switch {
	case errors.Is(err, screen.ErrNoCodes):
		return errors.New("no codes to screen: pass codes as arguments or via --codes-file")
	case errors.Is(err, screen.ErrNoMatches):
		log.Warn().Int("processed", sum.Processed).Msg("no symbols matched (or no data could be fetched)")
		return nil
	case err != nil:
		return err
	}
	log.Info().Int("processed", sum.Processed).Int("passed", sum.Passed).Msg("screen complete")

	opts := render.Options{
		Color:       viper.GetBool("color"),
		PrettyJSON:  viper.GetBool("pretty"),
		MaxColWidth: viper.GetInt("max-col-width"),
		Names:       viper.GetBool("names"),
	}
	if opts.MaxColWidth <= 0 {
		if w := detectTerminalWidth(); w > 0 {
			opts.MaxColWidth = w / 4
		}
	}

	if opts.Names {
		svc := enrich.NewCacheService(enrich.NewYFService(5 * time.Second))
		enrich.Apply(cmd.Context(), svc, rows)
	}

	var r render.Renderer
	switch viper.GetString("format") {
	case "table":
		r = render.NewTableRenderer()
	case "csv":
		r = render.NewCSVRenderer()
	case "json":
		r = render.NewJSONRenderer()
	default:
		return fmt.Errorf("unknown format %q (want table, csv or json)", viper.GetString("format"))
	}
	if err := r.Render(os.Stdout, rows, opts); err != nil {
		return err
	}

	if viper.GetBool("export") || viper.GetString("out") != "" {
		path, err := render.WriteCSVFile(viper.GetString("out"), rows, opts)
		if err != nil {
			return err
		}
		log.Info().Str("file", path).Msg("CSV exported")
	}

	if viper.GetString("format") == "table" {
		fmt.Fprintln(os.Stderr, "note: Yahoo data is best-effort; gaps and rate limits happen. Runs after the close are most stable.")
	}
	return nil
}

func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

func paramsFromConfig() types.Params {
	return types.Params{
		LookbackDays:   viper.GetInt("lookback"),
		RecentDays:     viper.GetInt("recent"),
		BaseDays:       viper.GetInt("base"),
		MinRecentRatio: viper.GetFloat64("min-recent-ratio"),
		SpikeDays:      viper.GetInt("spike"),
		MinSpikeRatio:  viper.GetFloat64("min-spike-ratio"),
		MaxDayChange:   viper.GetFloat64("max-day-change"),
		MinBaseVolume:  viper.GetFloat64("min-base-volume"),
		TopN:           viper.GetInt("top"),
	}
}

// collectCodes merges argument codes with the codes file, falling back to
// the built-in default list when neither is given.
func collectCodes(args []string) ([]string, error) {
	var parts []string
	if len(args) > 0 {
		parts = append(parts, strings.Join(args, "\n"))
	}
	if path := viper.GetString("codes-file"); path != "" {
		fromFile, err := codes.LoadFile(path)
		if err != nil {
			return nil, err
		}
		parts = append(parts, strings.Join(fromFile, "\n"))
	}
	if len(parts) == 0 {
		parts = append(parts, defaultCodes)
	}
	return codes.Parse(strings.Join(parts, "\n")), nil
}
