package config

import "flag"

func ParseFlags(base Settings, args []string) (Settings, error) {
	flags := flag.NewFlagSet(configDirName, flag.ContinueOnError)
	configPath := flags.String("config", base.ConfigPath, "Path to the sorting config file")
	logFile := flags.String("log", base.LogFile, "Log file path")
	logLevel := flags.String("log-level", base.LogLevel, "Log level (debug, info, warn, error)")
	theme := flags.String("theme", base.Theme, "Color theme (dark or light)")
	source := flags.String("source", base.Source, "Source folder for this session only")
	toast := flags.Duration("toast", base.ToastDuration, "How long status messages stay visible")
	if err := flags.Parse(args); err != nil {
		return base, err
	}

	base.ConfigPath = *configPath
	base.LogFile = *logFile
	base.LogLevel = *logLevel
	base.Theme = *theme
	base.Source = *source
	base.ToastDuration = *toast
	if base.Source == "" && flags.NArg() > 0 {
		base.Source = flags.Arg(0)
	}
	return base, nil
}
