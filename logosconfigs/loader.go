package logosconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/logos/cmds"
	"github.com/reusee/logos/configs"
	"github.com/reusee/logos/logs"
	"github.com/reusee/logos/modes"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config", "load a config file, repeatable")

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// explicit paths first
	paths = append(paths, *configFlag...)

	if !mode.IsProduction() {
		return configs.NewLoader(paths, schema)
	}

	filenames := []string{
		"logos.cue",
		".logos.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, "logos", filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return configs.NewLoader(paths, schema)
}
