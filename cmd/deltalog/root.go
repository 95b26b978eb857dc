package main

import (
	"github.com/deltalog/deltalog/cli/logflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type driver struct {
	logFlags logflags.Flags
	confPath string
	format   string
	logger   *zap.Logger
}

func rootCmd() *cobra.Command {
	d := &driver{}
	cmd := &cobra.Command{
		Use:           "deltalog",
		Short:         "compiler front end for deltalog programs",
		Long:          "deltalog parses and analyzes Datalog-with-updates programs, building the tables a relational code generator consumes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return d.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if d.logger != nil {
				d.logger.Sync()
			}
		},
	}
	pf := cmd.PersistentFlags()
	d.logFlags.SetFlags(pf)
	pf.StringVarP(&d.format, "format", "f", "text", "output format: text or json")
	pf.StringVar(&d.confPath, "config", "", "path of YAML config file")
	cmd.AddCommand(d.checkCmd())
	cmd.AddCommand(d.tablesCmd())
	cmd.AddCommand(d.astCmd())
	return cmd
}

func (d *driver) init(cmd *cobra.Command) error {
	if d.confPath != "" {
		conf, err := loadConfig(d.confPath)
		if err != nil {
			return err
		}
		// Flags given on the command line win over the config file.
		flags := cmd.Flags()
		if conf.Log.Level != "" && !flags.Changed("log.level") {
			d.logFlags.Level = conf.Log.Level
		}
		if conf.Log.Path != "" && !flags.Changed("log.path") {
			d.logFlags.Path = conf.Log.Path
		}
		if conf.Format != "" && !flags.Changed("format") {
			d.format = conf.Format
		}
	}
	logger, err := d.logFlags.Open()
	if err != nil {
		return err
	}
	d.logger = logger
	return nil
}
