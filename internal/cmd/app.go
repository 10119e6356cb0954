package cmd

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/apierr"
	"github.com/taskzilla/taskzilla-cli/internal/config"
	"github.com/taskzilla/taskzilla-cli/internal/log"
	"github.com/taskzilla/taskzilla-cli/internal/notify"
	"github.com/taskzilla/taskzilla-cli/internal/query"
	"github.com/taskzilla/taskzilla-cli/internal/service"
	"github.com/taskzilla/taskzilla-cli/internal/session"
	"github.com/taskzilla/taskzilla-cli/internal/storage"
	"github.com/taskzilla/taskzilla-cli/internal/ux"
)

// App holds everything a command needs, wired once per invocation.
type App struct {
	Config    *config.Config
	Logger    *log.Logger
	Notifier  notify.Notifier
	Session   *session.Store
	Client    *api.Client
	Services  *service.Services
	Formatter ux.Formatter
}

// newApp loads configuration and wires the pipeline, session and services.
// The session is hydrated before returning, so callers can read
// authentication state immediately.
func newApp() (*App, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagQuiet {
		cfg.Quiet = true
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		logCfg.Level = log.LevelDebug
	}
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	var notifier notify.Notifier = notify.NewTerminal(os.Stderr)
	if cfg.Quiet {
		notifier = notify.Silent{}
	}

	store := storage.New(filepath.Join(cfg.DataDir, "state"))
	cache := query.NewCache()

	// The session supplies the client's bearer token and the client reports
	// 401s back into the session, so wire through a late-bound reference.
	var sess *session.Store
	client := api.NewClient(cfg.APIURL, api.Options{
		HTTPClient: &http.Client{Timeout: cfg.Timeout()},
		Tokens: api.TokenSourceFunc(func() string {
			return sess.Token()
		}),
		Notifier: notifier,
		Logger:   logger,
		OnAuthFailure: func() {
			sess.Invalidate()
			cache.Clear()
		},
	})
	sess = session.NewStore(session.Config{
		Storage:  store,
		Auth:     client,
		Notifier: notifier,
		Logger:   logger,
	})
	sess.Hydrate()

	formatter, err := ux.NewFormatter(cfg.Output, &ux.FormatterOptions{NoColor: flagNoColor})
	if err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Notifier:  notifier,
		Session:   sess,
		Client:    client,
		Services:  service.New(client, cache, notifier),
		Formatter: formatter,
	}, nil
}

// requireAuth fails fast with the session-expired error when no session is
// present, instead of letting the server bounce the request.
func (a *App) requireAuth() error {
	if !a.Session.IsAuthenticated() {
		return apierr.New(apierr.KindAuth, apierr.MsgAuth)
	}
	return nil
}
