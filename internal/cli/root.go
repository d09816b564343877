package cli

import (
	"fmt"

	"insight-srv/config"
	configYouTube "insight-srv/config/youtube"
	"insight-srv/internal/analytics"
	analyticsUsecase "insight-srv/internal/analytics/usecase"
	"insight-srv/internal/catalog"
	catalogUsecase "insight-srv/internal/catalog/usecase"
	"insight-srv/internal/classifier"
	classifierUsecase "insight-srv/internal/classifier/usecase"
	"insight-srv/internal/comparison"
	comparisonUsecase "insight-srv/internal/comparison/usecase"
	engagementUsecase "insight-srv/internal/engagement/usecase"
	"insight-srv/internal/video"
	videoUsecase "insight-srv/internal/video/usecase"
	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is what every command runs against. It is built once, before the command runs.
type app struct {
	v          *viper.Viper
	newYouTube func(config.YouTubeConfig) youtube.IYouTube

	cfg          *config.Config
	l            log.Logger
	classifierUC classifier.UseCase
	comparisonUC comparison.UseCase
	analyticsUC  analytics.UseCase
	catalogUC    catalog.UseCase
}

// NewRootCmd builds the insightctl command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(configYouTube.New)
}

func newRootCmd(newYouTube func(config.YouTubeConfig) youtube.IYouTube) *cobra.Command {
	a := &app{v: viper.New(), newYouTube: newYouTube}

	root := &cobra.Command{
		Use:           "insightctl",
		Short:         "YouTube comment and engagement insights",
		Long:          "Classify comments, analyze and compare YouTube videos, and browse the AI tool and course catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	pf := root.PersistentFlags()
	pf.String("api-key", "", "YouTube Data API key (overrides youtube.api_key)")
	pf.Bool("json", false, "Print results as JSON")
	pf.Bool("verbose", false, "Write service logs")
	_ = a.v.BindPFlag("youtube.api_key", pf.Lookup("api-key"))
	_ = a.v.BindPFlag("output.json", pf.Lookup("json"))
	_ = a.v.BindPFlag("output.verbose", pf.Lookup("verbose"))

	root.AddCommand(
		newClassifyCmd(a),
		newAnalyzeCmd(a),
		newCompareCmd(a),
		newToolsCmd(a),
		newCoursesCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.LoadFrom(a.v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	a.l = log.NewNop()
	if a.v.GetBool("output.verbose") {
		a.l = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	lexicon, err := classifier.LexiconFromPath(cfg.Lexicon.Path)
	if err != nil {
		return err
	}
	cat, err := catalog.DefaultCatalog()
	if err != nil {
		return err
	}

	// No cache and no publisher: the CLI runs everything in-process.
	videoUC := videoUsecase.New(a.newYouTube(cfg.YouTube), nil, a.l, video.Config{APIKey: cfg.YouTube.APIKey})
	metricsUC := engagementUsecase.New()

	a.classifierUC = classifierUsecase.New(lexicon, classifier.DefaultConfig())
	a.comparisonUC = comparisonUsecase.New(a.l, videoUC, metricsUC)
	a.analyticsUC = analyticsUsecase.New(a.l, videoUC, a.classifierUC, metricsUC,
		analytics.Config{MaxComments: cfg.YouTube.MaxComments})
	a.catalogUC = catalogUsecase.New(a.l, cat)
	return nil
}

func (a *app) jsonOutput() bool {
	return a.v.GetBool("output.json")
}
