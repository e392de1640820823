package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stellarsec/netscope/internal/logs"
	"github.com/stellarsec/netscope/internal/message"
	"github.com/stellarsec/netscope/modules"
	o "github.com/stellarsec/netscope/modules/options"
)

var (
	cfgFile     string
	quietFlag   bool
	noColorFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "netscope",
	Short: "Netscope is a CLI tool for enumerating cloud network infrastructure.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		message.SetQuiet(quietFlag)
		message.SetNoColor(noColorFlag)
		logs.ConsoleLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.netscope.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress console messages")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringP(o.OutputOpt.Name, o.OutputOpt.Short, o.OutputOpt.Value, o.OutputOpt.Description)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".netscope" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".netscope")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func options2Flag(options []*o.Option, cmd *cobra.Command) {
	for _, option := range options {
		option2Flag(option, cmd)
	}
}

func option2Flag(option *o.Option, cmd *cobra.Command) {
	switch option.Type {
	case o.String:
		cmd.Flags().StringP(option.Name, option.Short, option.Value, option.Description)
	case o.Bool:
		value, _ := strconv.ParseBool(option.Value) // Convert string to bool
		cmd.Flags().BoolP(option.Name, option.Short, value, option.Description)
	case o.Int:
		intValue, _ := strconv.Atoi(option.Value) // Convert string to int
		cmd.Flags().IntP(option.Name, option.Short, intValue, option.Description)
	}

	if option.Required {
		cmd.MarkFlagRequired(option.Name)
	}
}

// getOpts resolves the module's options from the command flags plus the
// global output flag, validating required values. The module option vars are
// copied, never mutated.
func getOpts(cmd *cobra.Command, moduleOpts []*o.Option) []*o.Option {
	opts := getGlobalOpts(cmd)

	resolved := o.CreateDeepCopyOfOptions(moduleOpts)
	for _, opt := range resolved {
		switch opt.Type {
		case o.String:
			opt.Value, _ = cmd.Flags().GetString(opt.Name)
		case o.Bool:
			value, _ := cmd.Flags().GetBool(opt.Name)
			opt.Value = strconv.FormatBool(value)
		case o.Int:
			value, _ := cmd.Flags().GetInt(opt.Name)
			opt.Value = strconv.Itoa(value)
		}
	}
	opts = append(opts, resolved...)

	if err := o.ValidateOptions(opts, moduleOpts); err != nil {
		message.Error("%s", err)
		os.Exit(1)
	}

	return opts
}

func getGlobalOpts(cmd *cobra.Command) []*o.Option {
	opts := []*o.Option{}
	output := o.OutputOpt
	output.Value, _ = cmd.Flags().GetString(output.Name)
	opts = append(opts, &output)

	return opts
}

// runModule drains the module's result channel and writes each result
// through every configured provider, strictly in order.
func runModule(module modules.Module, meta modules.Metadata, run modules.Run) error {
	logger, logfile, logErr := logs.FileLogger()
	if logErr != nil {
		message.Warning("debug log unavailable: %s", logErr)
	} else {
		defer logfile.Close()
		logger.Debug("module start", "module", meta.Id)
	}

	var writeErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range run.Data {
			for _, provider := range module.GetOutputProviders() {
				if err := provider.Write(result); err != nil {
					message.Error("%s", err)
					if writeErr == nil {
						writeErr = err
					}
				}
			}
		}
	}()

	message.Section("Running module %s", meta.Name)
	err := module.Invoke()
	<-done
	if err == nil {
		err = writeErr
	}

	if logErr == nil {
		if err != nil {
			logger.Debug("module finished", "module", meta.Id, "error", err.Error())
		} else {
			logger.Debug("module finished", "module", meta.Id)
		}
	}
	return err
}
