package main

type Config struct {
	DatasetPath       string `env:"DATASET_PATH,default=chats.json"`
	BadgerFilepath    string `env:"BADGER_FILEPATH"`
	CensoredWordsPath string `env:"CENSORED_WORDS_PATH"`
	CensoredChar      string `env:"CENSORED_CHARACTER,default=*"`
	LogLevel          string `env:"LOG_LEVEL,default=info"`
	Host              string `env:"HOST,default=localhost"`
	Port              int    `env:"PORT,default=8080"`
	DebugPort         int    `env:"DEBUG_PORT,default=8081"`
}
