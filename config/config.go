package config

import (
	"time"

	"wlanctl/netsh"
)

type Config struct {
	Tool     string         `yaml:"tool"`
	Timeout  time.Duration  `yaml:"timeout"`
	Marker   string         `yaml:"marker"`
	Commands CommandsConfig `yaml:"commands"`
	UI       UIConfig       `yaml:"ui"`
}

type CommandsConfig struct {
	Scan       []string `yaml:"scan"`
	Connect    []string `yaml:"connect"`
	Disconnect []string `yaml:"disconnect"`
	Interfaces []string `yaml:"interfaces"`
}

type UIConfig struct {
	LogFile        string `yaml:"log_file"`
	RefreshOnStart *bool  `yaml:"refresh_on_start"`
	LogHeight      int    `yaml:"log_height"`
}

// NetshCommands converts the configured argument vectors.
func (c CommandsConfig) NetshCommands() netsh.Commands {
	return netsh.Commands{
		Scan:       c.Scan,
		Connect:    c.Connect,
		Disconnect: c.Disconnect,
		Interfaces: c.Interfaces,
	}
}
