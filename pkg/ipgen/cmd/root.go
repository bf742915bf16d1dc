package cmd

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/erwinvaneyk/goversion"
	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ovn-org/ovn-fake-multinode/pkg/utils/config"
	"github.com/ovn-org/ovn-fake-multinode/pkg/utils/constants"
	"github.com/ovn-org/ovn-fake-multinode/pkg/utils/netutils"
)

// ErrOutOfRange is returned in strict mode when the target lies past the end of the network
var ErrOutOfRange = errors.New("index is past the end of the network")

type RootOptions struct {
	ConfigFileOrDirPath string
	Config              config.Config
	Net                 netutils.NetInterface

	Network   string
	StartAddr string
	Index     string
	nArgs     int
}

func NewRootOptions() *RootOptions {
	return &RootOptions{
		Net: netutils.New(),
	}
}

func NewCmdRoot() *cobra.Command {
	return newCmdRoot(NewRootOptions())
}

func newCmdRoot(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.AppName + " <cidr> <start_addr> <index>",
		Short: "Print the IPv4 address <index> positions after <start_addr> within <cidr>.",
		Long: `Print the IPv4 address <index> positions after <start_addr> within <cidr>.

Nothing is printed when the target lies past the end of <cidr>; the exit
status is still 0 unless --strict is set. Any invalid input exits with
status 1 and no output. Pass a negative <index> after "--":

  ip_gen -- 10.0.0.0/24 10.0.0.9 -2`,
		// No subcommands: every positional argument, "help" included, is
		// handed to the resolver. Arguments are counted in Validate.
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.LoadConfig(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Complete(cmd, args)

			err := opts.Validate()
			if err != nil {
				return err
			}

			return opts.Run(cmd.OutOrStdout())
		},
	}
	cmd.Flags().AddFlagSet(opts.Flags())
	cmd.PersistentFlags().AddFlagSet(opts.PersistentFlags())

	return cmd
}

// Execute runs ip_gen and returns the process exit code
func Execute() int {
	err := NewCmdRoot().Execute()
	code := exitCode(err)
	_ = zap.L().Sync()
	return code
}

// exitCode is the only place errors are turned into an exit status. The
// cause is never printed, only logged when debug logging is on.
func exitCode(err error) int {
	if err != nil {
		zap.S().Debugf("%s failed: %+v", constants.AppName, err)
		return constants.ExitFailure
	}
	return constants.ExitSuccess
}

func (o *RootOptions) Flags() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("", pflag.ContinueOnError)
	flagSet.BoolVar(&o.Config.Strict, "strict", o.Config.Strict,
		"Exit with status 1 instead of 0 when <index> runs past the end of <cidr>.")
	return flagSet
}

func (o *RootOptions) PersistentFlags() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("", pflag.ContinueOnError)
	flagSet.BoolVar(&o.Config.Debug, "debug", o.Config.Debug,
		"Log the reason of a failure and other details to stderr.")
	flagSet.StringVar(&o.ConfigFileOrDirPath, "config", o.ConfigFileOrDirPath,
		fmt.Sprintf("Path to the config directory or file (default is $HOME/%s if it exists).", constants.DefaultConfigName))
	flagSet.StringVar(&o.Config.LogFile, "log-file", o.Config.LogFile,
		"Also write debug logs to this file, rotated when it grows too large.")
	return flagSet
}

// LoadConfig reads the config file (or directory) and environment, fills in
// the defaults, applies the flags that were set on the command line and sets
// up logging.
func (o *RootOptions) LoadConfig(flags *pflag.FlagSet) error {
	if o.ConfigFileOrDirPath == "" {
		if home, err := homedir.Dir(); err == nil {
			defaultPath := path.Join(home, constants.DefaultConfigName)
			if _, err := os.Stat(defaultPath); err == nil {
				o.ConfigFileOrDirPath = defaultPath
			}
		}
	}

	var cfgFromFS *config.Config
	if o.ConfigFileOrDirPath != "" {
		// Check whether the provided path is a directory or a file
		fd, err := os.Stat(o.ConfigFileOrDirPath)
		if err != nil {
			return errors.Wrapf(err, "failed to find %s file or directory", o.ConfigFileOrDirPath)
		}
		if fd.IsDir() {
			cfgFromFS, err = config.GetConfigFromDir(o.ConfigFileOrDirPath)
		} else {
			cfgFromFS, err = config.GetConfigFromFile(o.ConfigFileOrDirPath)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to load config file(s) from '%s'", o.ConfigFileOrDirPath)
		}
	} else {
		var err error
		cfgFromFS, err = config.GetConfigFromEnv()
		if err != nil {
			return errors.Wrap(err, "failed to load config from environment")
		}
	}

	cfg := *cfgFromFS
	err := mergo.Merge(&cfg, &config.DefaultConfig)
	if err != nil {
		return err
	}
	// An explicitly set flag wins, even when it sets false or "".
	if flags.Changed("debug") {
		cfg.Debug = o.Config.Debug
	}
	if flags.Changed("strict") {
		cfg.Strict = o.Config.Strict
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.Config.LogFile
	}
	o.Config = cfg

	SetupLogger(o.Config.Debug, o.Config.LogFile)
	return nil
}

func (o *RootOptions) Complete(cmd *cobra.Command, args []string) {
	o.nArgs = len(args)
	if len(args) == 3 {
		o.Network, o.StartAddr, o.Index = args[0], args[1], args[2]
	}
}

func (o *RootOptions) Validate() error {
	if o.nArgs != 3 {
		return errors.Wrapf(netutils.ErrInputFailure, "expected <cidr> <start_addr> <index>, got %d argument(s)", o.nArgs)
	}
	return nil
}

func (o *RootOptions) Run(out io.Writer) error {
	zap.S().Debugf("%s version info:\n%s", constants.AppName, goversion.Get().ToPrettyJSON())

	b, err := yaml.Marshal(o.Config)
	if err != nil {
		return err
	}
	zap.S().Debugf("Using %s config:\n%s", constants.AppName, string(b))

	res, err := o.Net.ResolveOffset(o.Network, o.StartAddr, o.Index)
	if err != nil {
		return err
	}
	if !res.Found {
		// Past the end is a silent success for compatibility with the script
		// this replaced, which only printed when the index was in range.
		if o.Config.Strict {
			return errors.Wrapf(ErrOutOfRange, "%s + %s in %s", o.StartAddr, o.Index, o.Network)
		}
		return nil
	}

	_, err = fmt.Fprintln(out, res.Address)
	return err
}

// SetupLogger installs the global zap logger. The console only receives
// panics unless debug is set, so a failing run prints nothing by default.
// If logFile is set, everything down to debug level also goes to a
// lumberjack-rotated file.
func SetupLogger(debug bool, logFile string) {
	consoleLvl := zap.PanicLevel
	if debug {
		consoleLvl = zap.DebugLevel
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(getProdEncoderConfig()), zapcore.Lock(os.Stderr), consoleLvl),
	}
	if logFile != "" {
		f := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    constants.LogFileMaxSizeMB,
			MaxBackups: constants.LogFileMaxBackups,
			MaxAge:     constants.LogFileMaxAgeDays,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(getProdEncoderConfig()), f, zap.DebugLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zap.ReplaceGlobals(logger)
}

func getProdEncoderConfig() zapcore.EncoderConfig {
	prodcfg := zap.NewProductionEncoderConfig()
	// by default production encoder has epoch time, using something more readable
	prodcfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return prodcfg
}
