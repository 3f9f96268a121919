package cmd

import (
	"fmt"
	"os"

	"peminjaman/internal/api"
	"peminjaman/internal/assets"
	"peminjaman/internal/config"
	"peminjaman/internal/core/logger"
	"peminjaman/internal/export"
	"peminjaman/internal/inflight"
	"peminjaman/internal/loans"
	"peminjaman/internal/reports"
	"peminjaman/internal/returns"
	"peminjaman/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app wires the client stack once per invocation. Commands reach everything
// through this container instead of package-level state.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	client  *api.Client
	sess    *session.Session
	guard   *inflight.Guard
	assets  *assets.Service
	loans   *loans.Service
	returns *returns.Service
	reports *reports.Service
	export  *export.Service
}

var a app

func newApp() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.Debug)

	client := api.NewClient(cfg.API, log)
	sess := session.New(session.NewStore(cfg.SessionFile), log)
	if err := sess.Restore(); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	client.SetTokenSource(sess.Token)
	client.OnUnauthorized(sess.Expire)

	guard := inflight.NewGuard()

	a = app{
		cfg:     cfg,
		log:     log,
		client:  client,
		sess:    sess,
		guard:   guard,
		assets:  assets.NewService(client, sess, guard, log),
		loans:   loans.NewService(client, sess, guard, log),
		returns: returns.NewService(client, sess, guard, log),
		reports: reports.NewService(client, sess, guard, log),
		export:  export.NewService(client, sess, log),
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:          "peminjaman",
	Short:        "Klien layanan peminjaman aset BUF",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return newApp()
	},
}

func Execute() {
	rootCmd.AddCommand(
		loginCmd, logoutCmd, whoamiCmd,
		assetsCmd, loansCmd, returnsCmd, reportsCmd, exportCmd,
		stubServerCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
