package main

var (
	Run        = run
	ParseArgs  = parseArgs
	LoadConfig = loadConfig
)

type Config = config

func DefaultConfig() Config {
	return defaultConfig()
}
