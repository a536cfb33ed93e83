/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is the exerciser itself: transmit a pattern on one port, verify
// it on the other.
var rootCmd = &cobra.Command{
	Use:   "port-runner",
	Short: "Exercise and validate your serial port traffic",
	Long: `port-runner continuously transmits a byte pattern on one serial port and
verifies on a second port that the same pattern arrives intact and in order.

The two ports are usually the ends of a loopback cable or a link under test.
The pattern is loaded from a file and sent repeatedly with a configurable
delay; the receive side re-aligns the incoming stream against the repeating
pattern and counts good compares and miscompares. Press Ctrl+C to stop and
print the totals.

Baud rates are named by their termios constants (B50 through B4000000). If
only one device names a rate the other inherits it; naming two different
rates is an error.

Example usage:
  port-runner -t /dev/ttyUSB0,B115200 -r /dev/ttyUSB1 -f pattern.bin -d 10
  port-runner -t /dev/ttyUSB0 -r /dev/ttyUSB1,b9600 -f pattern.bin
  port-runner --tui -t /dev/ttyUSB0,B115200 -r /dev/ttyUSB1 -f pattern.bin`,
	Run: func(cmd *cobra.Command, args []string) {
		if code := runExerciser(cmd); code != 0 {
			os.Exit(code)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUsage)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.port-runner.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log tolerated I/O errors to stderr")

	rootCmd.Flags().StringP("transmit", "t", "", "transmit device, optionally with a baud rate: <device>[,<baud>]")
	rootCmd.Flags().StringP("receive", "r", "", "receive device, optionally with a baud rate: <device>[,<baud>]")
	rootCmd.Flags().StringP("file", "f", "", "file whose contents become the data pattern")
	rootCmd.Flags().StringP("delay", "d", "", "delay in milliseconds between sends")
	rootCmd.Flags().Bool("tui", false, "show a live statistics dashboard instead of progress marks")
	rootCmd.Flags().Int("chunk-size", 0, "receive buffer size in bytes")

	viper.SetDefault("delay", 0)
	viper.SetDefault("chunk_size", 100)
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("chunk_size", rootCmd.Flags().Lookup("chunk-size"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".port-runner")
	}

	viper.SetEnvPrefix("PORTRUNNER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the stderr console logger. Progress marks stay on
// stdout; only lifecycle messages and tolerated I/O errors go through here.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
