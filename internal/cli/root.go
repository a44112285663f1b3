// Package cli implements the kurdtx command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LeJamon/goKurdBase/internal/config"
	"github.com/LeJamon/goKurdBase/internal/keypair"
	"github.com/LeJamon/goKurdBase/internal/storage"
	"github.com/LeJamon/goKurdBase/internal/storage/database"
	"github.com/LeJamon/goKurdBase/internal/storage/seqstore"
)

// Version is overridden at link time.
var Version = "0.1.0-dev"

// SecretEnv names the variable read when --secret is not given.
const SecretEnv = "KURDTX_SECRET"

// app carries the global flags and the state they produce.
type app struct {
	configFile string
	network    string
	debug      bool
	verbose    bool
	quiet      bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd returns the kurdtx command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "kurdtx",
		Short: "Build, sign and inspect KurdCoin transactions",
		Long: `kurdtx builds KurdCoin transactions, signs them offline and decodes
base64 envelopes. Sequence numbers of source accounts are tracked in a
local store so consecutive builds never reuse one.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "conf", "", "configuration file path")
	flags.StringVar(&a.network, "network", "", "network passphrase or public|testnet|standalone (overrides config)")
	flags.BoolVar(&a.debug, "debug", false, "enable normally suppressed debug logging")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(
		newVersionCmd(),
		newKeygenCmd(a),
		newAddressCmd(),
		newAmountCmd(),
		newBuildCmd(a),
		newSignCmd(a),
		newDecodeCmd(a),
		newHashCmd(a),
		newFeeBumpCmd(a),
		newSeqCmd(a),
	)
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	if a.network != "" {
		cfg.Network.Passphrase = a.network
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Log, a.debug || a.verbose, a.quiet)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.logger = logger
	return nil
}

// newLogger writes to stderr so that command output on stdout stays
// machine readable.
func newLogger(cfg config.LogConfig, debug, quiet bool) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	switch {
	case debug:
		level = zapcore.DebugLevel
	case quiet:
		level = zapcore.ErrorLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// openBook opens the configured sequence book. The returned function
// closes the underlying store.
func (a *app) openBook() (*seqstore.Book, func() error, error) {
	m, err := storage.NewManager(a.cfg.Store.Backend, a.cfg.Store.Path)
	if err != nil {
		return nil, nil, err
	}
	db, err := m.OpenDB(seqstore.DBName)
	if err != nil {
		_ = m.Close()
		return nil, nil, err
	}
	book, err := seqstore.New(db,
		seqstore.WithLogger(a.logger.Named("seqstore")),
		seqstore.WithCacheSize(a.cfg.Store.CacheSize),
	)
	if err != nil {
		_ = m.Close()
		return nil, nil, err
	}
	return book, m.Close, nil
}

var errNoSecret = errors.New("no secret: pass --secret or set " + SecretEnv)

// signingKey resolves --secret, falling back to SecretEnv.
func signingKey(secret string) (*keypair.Keypair, error) {
	if secret == "" {
		secret = os.Getenv(SecretEnv)
	}
	if secret == "" {
		return nil, errNoSecret
	}
	return keypair.FromSecret(strings.TrimSpace(secret))
}

// envelopeArg returns args[0], or stdin when it is "-" or absent.
func envelopeArg(in io.Reader, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// closeWith runs closer and keeps the first error.
func closeWith(err *error, closer func() error) {
	if cerr := closer(); cerr != nil && *err == nil {
		*err = cerr
	}
}

func storeMissing(err error) bool {
	return errors.Is(err, seqstore.ErrUnknownAccount) || errors.Is(err, database.ErrKeyNotFound)
}
