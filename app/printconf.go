package app

import (
	"fmt"
	"os"
	"path/filepath"

	"mrz.io/signaller/app/config"
	"mrz.io/signaller/app/systemd"
)

// PrintConf writes an init-system unit that runs signaller to stdout. Only
// systemd and launchd are supported. The unit's working directory is the
// config file's directory, so the watcher finds the file (and writes its log)
// there; the config's continue-on names are baked into the command line.
func PrintConf(initType, configFile string, envVars []string) error {
	if initType != "systemd" && initType != "launchd" {
		return fmt.Errorf("only launchd and systemd are supported")
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	binPath, err := os.Executable()
	if err != nil {
		return err
	}

	configPath, err := filepath.Abs(configFile)
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	command := append([]string{binPath}, cfg.ContinueOn...)

	commandLine := fmt.Sprintf("%q", binPath)
	for _, name := range cfg.ContinueOn {
		commandLine += fmt.Sprintf(" %q", name)
	}

	conf := &systemd.Unit{
		Description: fmt.Sprintf("%s signal watcher", Name),
		WorkingDir:  filepath.Dir(configPath),
		CommandLine: commandLine,
		Command:     command,
		Home:        home,
	}

	for _, envVar := range envVars {
		conf.Env = append(conf.Env, systemd.EnvVar{
			Name:  envVar,
			Value: os.Getenv(envVar),
		})
	}

	if err := conf.Write(os.Stdout, initType); err != nil {
		return err
	}

	return nil
}
