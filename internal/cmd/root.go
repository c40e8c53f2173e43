package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ross-spencer/whatsmapper/internal/adapter/parser"
	"github.com/ross-spencer/whatsmapper/internal/adapter/renderer"
	"github.com/ross-spencer/whatsmapper/internal/adapter/source"
	"github.com/ross-spencer/whatsmapper/internal/adapter/transcriber"
	"github.com/ross-spencer/whatsmapper/internal/app"
	"github.com/ross-spencer/whatsmapper/internal/domain"
	"github.com/ross-spencer/whatsmapper/internal/observability"
)

var (
	fromStr      string
	toStr        string
	output       string
	format       string
	title        string
	templatePath string
	noStats      bool
	transcribe   bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "whatsmap <export>",
	Short: "Map WhatsApp chat exports to HTML or text",
	Long: `whatsmap reads a WhatsApp chat export (a _chat.txt transcript, the
directory holding one, or the exported .zip) and maps it to a single
HTML page with inline attachments, or to plain text or markdown.
Voice notes can optionally be transcribed using the OpenAI Whisper API.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&fromStr, "from", "", `Start time filter (format: "DD.MM.YYYY" or "DD.MM.YYYY HH:MM")`)
	rootCmd.Flags().StringVar(&toStr, "to", "", `End time filter (format: "DD.MM.YYYY" or "DD.MM.YYYY HH:MM")`)
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "html", `Output format: "html", "text" or "markdown"`)
	rootCmd.Flags().StringVar(&title, "title", "", "Page title for HTML output")
	rootCmd.Flags().StringVar(&templatePath, "template", "", "Custom HTML page template file")
	rootCmd.Flags().BoolVar(&noStats, "no-stats", false, "Omit the summary block from HTML output")
	rootCmd.Flags().BoolVar(&transcribe, "transcribe", false, "Transcribe voice notes via the OpenAI Whisper API")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Clean(filepath.Join(configHome, app.ApplicationName))
}

func initConfig() {
	dir := configDir()

	if _, err := os.Stat(dir); os.IsNotExist(err) { //nolint:gosec // path is constructed from XDG_CONFIG_HOME or user home dir
		err = os.MkdirAll(dir, 0750) //nolint:gosec // see above
		cobra.CheckErr(err)
	}

	viper.AddConfigPath(dir)
	viper.SetConfigType("json")
	viper.SetConfigName("config")

	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	viper.AutomaticEnv()

	// Silently ignore missing config file
	_ = viper.ReadInConfig()

	// Bridge config value to environment variable for OpenAI SDK
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" {
		if os.Getenv("OPENAI_API_KEY") == "" {
			_ = os.Setenv("OPENAI_API_KEY", apiKey)
		}
	}
}

func runRoot(_ *cobra.Command, args []string) error {
	exportPath := args[0]

	from, err := parseTime(fromStr)
	if err != nil {
		return fmt.Errorf("parsing --from: %w", err)
	}

	to, err := parseTime(toStr)
	if err != nil {
		return fmt.Errorf("parsing --to: %w", err)
	}

	// If --to is date-only, set to end of day
	if to != nil && !strings.Contains(toStr, " ") {
		endOfDay := to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		to = &endOfDay
	}

	log, err := observability.NewLogger(verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	loader := source.New(log)
	defer loader.Cleanup()

	p, err := buildParser(log)
	if err != nil {
		return err
	}

	r, err := buildRenderer(log)
	if err != nil {
		return err
	}

	var t domain.Transcriber
	if transcribe {
		t = transcriber.NewWhisper()
	}

	svc := app.NewConvertService(loader, p, t, r, log)

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	opts := app.ConvertOptions{From: from, To: to, Transcribe: transcribe}
	return svc.Convert(context.Background(), exportPath, opts, w)
}

func buildParser(log *zap.Logger) (*parser.Parser, error) {
	opts := parser.Options{Logger: log}

	if pat := viper.GetString("media_name_pattern"); pat != "" {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("invalid media_name_pattern in config: %w", err)
		}
		opts.MediaNamePattern = re
	}

	return parser.New(opts), nil
}

func buildRenderer(log *zap.Logger) (domain.Renderer, error) {
	switch format {
	case "html":
		src := ""
		if templatePath != "" {
			data, err := os.ReadFile(templatePath) //nolint:gosec // path supplied by the operator
			if err != nil {
				return nil, fmt.Errorf("reading template file: %w", err)
			}
			src = string(data)
		}
		return renderer.NewHTML(renderer.Options{
			Title:      title,
			Template:   src,
			Stats:      !noStats,
			CheckFiles: true,
			Logger:     log,
		})

	case "text":
		return &renderer.Text{}, nil

	case "markdown":
		return &renderer.Text{Markdown: true}, nil

	default:
		return nil, fmt.Errorf("unknown format: %q (expected html, text or markdown)", format)
	}
}

func parseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	formats := []string{
		"02.01.2006 15:04",
		"02.01.2006",
	}

	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("unknown time format: %q (expected DD.MM.YYYY or DD.MM.YYYY HH:MM)", s)
}
