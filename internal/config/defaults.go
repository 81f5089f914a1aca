package config

const (
	defaultConfigPath    = "~/.config/bisub/config.toml"
	projectConfigName    = "bisub.toml"
	defaultStateDir      = "~/.local/share/bisub"
	defaultLogDir        = "~/.local/share/bisub/logs"
	defaultBind          = "127.0.0.1:5000"
	defaultMaxBodyBytes  = 8 << 20
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultOutputSuffix  = ".zh-en.srt"
	apiTokenEnv          = "BISUB_API_TOKEN"
	lockFileName         = "bisub.lock"
	logFileName          = "bisub.log"
	maxAllowedBodyBytes  = 256 << 20
	defaultDetectCharset = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Server: Server{
			Bind:         defaultBind,
			MaxBodyBytes: defaultMaxBodyBytes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Input: Input{
			DetectEncoding: defaultDetectCharset,
		},
		Merge: Merge{
			OutputSuffix: defaultOutputSuffix,
		},
	}
}
