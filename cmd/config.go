package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"tighten.dev/pkg/tighten/internal/adapter"
	"tighten.dev/pkg/tighten/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "tighten"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	dirFlagName           = "dir"
	excludeFlagName       = "exclude"
	runParallelFlagName   = "parallel"
	batchMinFlagName      = "batch-min"
	batchMaxFlagName      = "batch-max"
	maxIterationsFlagName = "max-iterations"
	seedFlagName          = "seed"
	noFormatFlagName      = "no-format"
	noTUIFlagName         = "no-tui"
	diffFlagName          = "diff"
	verboseFlagName       = "verbose"
	logFileFlagName       = "log-file"

	dirConfigKey           = "dir"
	excludeConfigKey       = "paths.exclude"
	runParallelConfigKey   = "run.parallel"
	batchMinConfigKey      = "run.batch_min"
	batchMaxConfigKey      = "run.batch_max"
	maxDrawsConfigKey      = "run.max_draws"
	maxIterationsConfigKey = "run.max_iterations"
	seedConfigKey          = "run.seed"
	pollIntervalConfigKey  = "run.poll_interval"
	buildBinaryConfigKey   = "build.binary"
	buildExtraArgsKey      = "build.extra_args"
	buildFormatConfigKey   = "build.format"
	vcsBinaryConfigKey     = "vcs.binary"
	tuiConfigKey           = "ui.tui"

	defaultDir           = "."
	defaultRunParallel   = 4
	defaultMaxIterations = 0
	defaultSeed          = 0
	defaultBuildFormat   = true
	defaultTUI           = true

	envPrefix = "TIGHTEN"

	// Collaborator overrides keep their conventional unprefixed names.
	vcsBinaryEnv   = "GIT"
	buildBinaryEnv = "CARGO"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".tighten.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	setConfigDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func setConfigDefaults() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	_ = viper.BindEnv(vcsBinaryConfigKey, envPrefix+"_VCS_BINARY", vcsBinaryEnv)
	_ = viper.BindEnv(buildBinaryConfigKey, envPrefix+"_BUILD_BINARY", buildBinaryEnv)

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(dirConfigKey, defaultDir)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(batchMinConfigKey, domain.DefaultBatchMin)
	viper.SetDefault(batchMaxConfigKey, domain.DefaultBatchMax)
	viper.SetDefault(maxDrawsConfigKey, domain.DefaultMaxDraws)
	viper.SetDefault(maxIterationsConfigKey, defaultMaxIterations)
	viper.SetDefault(seedConfigKey, defaultSeed)
	viper.SetDefault(pollIntervalConfigKey, adapter.DefaultPollInterval.String())
	viper.SetDefault(buildBinaryConfigKey, adapter.DefaultCargoBinary)
	viper.SetDefault(buildExtraArgsKey, []string{})
	viper.SetDefault(buildFormatConfigKey, defaultBuildFormat)
	viper.SetDefault(vcsBinaryConfigKey, adapter.DefaultGitBinary)
	viper.SetDefault(tuiConfigKey, defaultTUI)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// pollInterval reads run.poll_interval, falling back to the default on a
// malformed value.
func pollInterval() time.Duration {
	interval, err := time.ParseDuration(viper.GetString(pollIntervalConfigKey))
	if err != nil || interval <= 0 {
		slog.Warn("invalid poll interval, using default", "value", viper.GetString(pollIntervalConfigKey))
		return adapter.DefaultPollInterval
	}

	return interval
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
