package main

import "time"

type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR,default=:8080"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,default=INFO"`
	MinConfidence  float64       `env:"MIN_CONFIDENCE,default=0.6"`
	HistoryLimit   int           `env:"HISTORY_LIMIT,default=200"`
	GroupWindow    time.Duration `env:"GROUP_WINDOW,default=15m"`

	DemoMode     bool   `env:"DEMO_MODE,default=true"`
	SMTPHost     string `env:"SMTP_HOST,default=smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT,default=587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
}
