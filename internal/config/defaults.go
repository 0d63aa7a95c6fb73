package config

const (
	defaultDataDir    = "~/.local/share/rankdict/data"
	defaultOutputFile = "~/.local/share/rankdict/frequency_lists.coffee"
	defaultLogDir     = "~/.local/share/rankdict/logs"
	defaultCountDB    = "~/.local/share/rankdict/counts.db"

	defaultOutputFormat = "coffee"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"

	defaultMinTokenLength          = 3
	defaultMinGuessesBeforeGrowing = 1000
	defaultPrefixMultiplier        = 22
	defaultMinPrefixLength         = 5
)

// Default returns a Config populated with repository defaults. The stock
// dictionary set matches the artifact shipped with the estimator; name lists
// are unbounded because they are small and dense.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			OutputFile: defaultOutputFile,
			LogDir:     defaultLogDir,
			CountDB:    defaultCountDB,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Filter: Filter{
			MinTokenLength:          defaultMinTokenLength,
			MinGuessesBeforeGrowing: defaultMinGuessesBeforeGrowing,
			PrefixMultiplier:        defaultPrefixMultiplier,
			MinPrefixLength:         defaultMinPrefixLength,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Dictionaries: []Dictionary{
			{Name: "us_tv_and_film", MaxTokens: 30000},
			{Name: "english_wikipedia", MaxTokens: 30000},
			{Name: "passwords", MaxTokens: 30000},
			{Name: "surnames", MaxTokens: 10000},
			{Name: "male_names"},
			{Name: "female_names"},
		},
	}
}
