package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	SqliteFile string `toml:"sqlite_file"`
}

type Config struct {
	Server Server
}

func New() (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if path := os.Getenv("STATSERVER_SQLITE"); path != "" {
		serverCfg.SqliteFile = path
	}
	if serverCfg.SqliteFile == "" {
		serverCfg.SqliteFile = "stats.sqlite"
	}

	return Config{
		Server: serverCfg,
	}, nil
}
