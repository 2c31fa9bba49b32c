package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/skarn/mdxwrap/internal/config"
	"github.com/skarn/mdxwrap/internal/core"
	"github.com/skarn/mdxwrap/internal/input"
	"github.com/skarn/mdxwrap/internal/report"
	"github.com/skarn/mdxwrap/internal/worker"
)

func newCrackCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Supervise a cracking run against a wordlist",
		// Flags are parsed manually so that unrecognized ones can be
		// forwarded verbatim to the worker (Hashtopolis compatibility).
		DisableFlagParsing: true,
		RunE:               runCrack,
	}

	flags := cmd.Flags()
	flags.StringP("attacked-hashlist", "a", "", "File containing the list of hashes to attack")
	flags.StringP("wordlist", "w", "", "Wordlist for the attack")
	flags.StringP("type", "t", defaults.TypeFilter, "Hash types for the worker (e.g. 'ALL,!user,salt' or 'MD5,SHA1')")
	flags.IntP("iterations", "i", defaults.Iterations, "Number of iterations for hash algorithms")
	flags.Int64P("skip", "s", 0, "Skip the first N candidates of the wordlist")
	flags.Int64P("length", "l", 0, "Process only N candidates from the skip offset")
	flags.Int64P("keyspace", "k", 0, "Caller-supplied total keyspace (skips counting the wordlist)")
	flags.Int("timeout", 0, "Stop the cracking process after N seconds")
	flags.Int("status-interval", defaults.StatusIntervalSeconds, "Seconds between STATUS lines")
	flags.Int("grace-period", defaults.GraceSeconds, "Seconds between graceful terminate and kill")
	return cmd
}

func runCrack(cmd *cobra.Command, args []string) error {
	// Merge local and inherited flags into one set; pflag reuses the flag
	// pointers, so parsing the merged set updates the bound values.
	flags := pflag.NewFlagSet("crack", pflag.ContinueOnError)
	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.Root().PersistentFlags())

	known, passthrough := splitKnownArgs(flags, args)
	if err := flags.Parse(known); err != nil {
		return err
	}
	if helpFlag := flags.Lookup("help"); helpFlag != nil && helpFlag.Changed {
		return cmd.Help()
	}
	if err := initViper(flags); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	cfg.HashlistFile = viper.GetString("attacked-hashlist")
	cfg.WordlistFile = viper.GetString("wordlist")
	cfg.TypeFilter = viper.GetString("type")
	cfg.Iterations = viper.GetInt("iterations")
	cfg.Skip = viper.GetInt64("skip")
	cfg.Limit = viper.GetInt64("length")
	cfg.Keyspace = viper.GetInt64("keyspace")
	cfg.TimeoutSeconds = viper.GetInt("timeout")
	cfg.StatusIntervalSeconds = viper.GetInt("status-interval")
	cfg.GraceSeconds = viper.GetInt("grace-period")
	cfg.WorkerPath = viper.GetString("worker-path")
	cfg.Passthrough = passthrough
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger()
	logger.Debugf("Crack run: hashlist=%s wordlist=%s skip=%d length=%d", cfg.HashlistFile, cfg.WordlistFile, cfg.Skip, cfg.Limit)
	if len(cfg.Passthrough) > 0 {
		logger.Debugf("Forwarding %d unrecognized arguments to the worker: %v", len(cfg.Passthrough), cfg.Passthrough)
	}

	entries, err := input.ReadTargets(cfg.HashlistFile)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no hashes found in %s", cfg.HashlistFile)
	}
	logger.Infof("Loaded %d target hashes.", len(entries))

	keyspace := cfg.Keyspace
	if keyspace <= 0 {
		if keyspace, err = input.CountLines(cfg.WordlistFile); err != nil {
			return err
		}
	} else if _, err := os.Stat(cfg.WordlistFile); err != nil {
		return fmt.Errorf("wordlist %s: %w", cfg.WordlistFile, err)
	}
	logger.Debugf("Keyspace: %d candidates.", keyspace)

	hashPath, saltPath, cleanup, err := input.WriteScratchFiles(entries)
	if err != nil {
		return err
	}
	defer cleanup()

	workerPath, err := worker.Locate(cfg.WorkerPath)
	if err != nil {
		return err
	}

	argv := worker.Args{
		TypeFilter:  cfg.TypeFilter,
		Iterations:  cfg.Iterations,
		HashFile:    hashPath,
		SaltFile:    saltPath,
		Skip:        cfg.Skip,
		Passthrough: cfg.Passthrough,
		Wordlist:    cfg.WordlistFile,
	}.Argv()
	logger.Debugf("Worker command: %s %v", workerPath, argv)

	cancel := core.NewCancellationController()
	cancel.WatchSignals(syscall.SIGINT, syscall.SIGTERM)

	supervisor := core.NewSupervisor(
		worker.New(workerPath, argv),
		core.Options{
			Window: core.WorkWindow{
				TotalKeyspace: keyspace,
				Skip:          cfg.Skip,
				Limit:         cfg.Limit,
			},
			StatusInterval: cfg.StatusInterval(),
			GracePeriod:    cfg.GracePeriod(),
			Timeout:        cfg.Timeout(),
		},
		cancel,
		report.NewEmitter(os.Stdout),
		logger,
	)
	return supervisor.Run()
}
