package config

import "picsort/internal/domain"

type Config struct {
	SourceFolder       string                        `json:"sourceFolder"`
	DestinationFolders map[string]domain.Destination `json:"destinationFolders"`
}

type fileConfig struct {
	SourceFolder       *string                       `json:"sourceFolder"`
	DestinationFolders map[string]domain.Destination `json:"destinationFolders"`
}

func (cfg Config) Clone() Config {
	clone := Config{
		SourceFolder:       cfg.SourceFolder,
		DestinationFolders: make(map[string]domain.Destination, len(cfg.DestinationFolders)),
	}
	for slot, destination := range cfg.DestinationFolders {
		clone.DestinationFolders[slot] = destination
	}
	return clone
}
