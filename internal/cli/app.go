package cli

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hikarisalon/concierge/internal/answer"
	"github.com/hikarisalon/concierge/internal/bot"
	"github.com/hikarisalon/concierge/internal/config"
	"github.com/hikarisalon/concierge/internal/faq"
	"github.com/hikarisalon/concierge/internal/kb"
	"github.com/hikarisalon/concierge/internal/ledger"
	"github.com/hikarisalon/concierge/internal/llm"
	"github.com/hikarisalon/concierge/internal/logger"
	"github.com/hikarisalon/concierge/internal/metrics"
	"github.com/hikarisalon/concierge/internal/reservation"
)

// App bundles the wired components a command needs.
type App struct {
	Cfg     *config.Config
	Bot     *bot.Bot
	Metrics *metrics.Metrics
	Log     *zap.Logger

	db *sql.DB
}

// Close releases the app's resources.
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	_ = a.Log.Sync()
}

// buildApp loads configuration and wires the full bot stack. withLedger
// controls whether the SQLite ledger is opened; the local chat skips it.
func buildApp(configPath string, withLedger bool) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	m := metrics.New()

	store := kb.Load(cfg.KB.Path, log)
	entries := faq.LoadEntries(cfg.FAQ.Path, log)
	index := faq.NewIndex(cfg.FAQ.Backend, entries, store)

	var client llm.Client
	if cfg.LLM.Enabled {
		observer := llm.MultiObserver(llm.NewZapObserver(log), m.Observer())
		client = llm.NewOpenAIClient(cfg.LLM, observer)
	}

	mode := answer.ModeTemplate
	if cfg.Answer.Mode == "generate" {
		mode = answer.ModeGenerate
	}
	gate := answer.NewGate(mode, client, log)

	engine := reservation.NewEngine(
		reservation.NewStore(),
		reservation.NewSchedule(time.Now()),
		log,
	)

	app := &App{Cfg: cfg, Metrics: m, Log: log}

	var recorder bot.Recorder
	if withLedger {
		db, err := ledger.OpenDB(cfg.Ledger.Path)
		if err != nil {
			return nil, fmt.Errorf("opening ledger: %w", err)
		}
		app.db = db
		recorder = ledger.NewSQLiteLedger(db)
	}

	app.Bot = bot.New(engine, index, gate, recorder, log).WithMetrics(m)
	return app, nil
}
