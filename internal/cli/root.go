// Package cli implements the keccaksum command-line interface.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the command reads,
// e.g. KECCAKSUM_BITS or KECCAKSUM_HMAC_KEY.
const EnvPrefix = "KECCAKSUM"

// Execute runs the root command.
func Execute() error {
	defer glog.Flush()
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "keccaksum:", err)
	}
	return err
}

// NewRootCmd builds the keccaksum command with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "keccaksum [file...]",
		Short: "Print legacy Keccak-256/512 checksums",
		Long: `keccaksum prints the legacy Keccak (pre-NIST padding) digest of each file,
or of standard input when no file or "-" is given.

Example:
  keccaksum block.bin
  keccaksum --bits 512 --double header.bin
  keccaksum --hmac-key 6b6579 -s "message"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			setupLogging(v)
			if f := v.ConfigFileUsed(); f != "" {
				glog.V(1).Infof("Using config file: %s", f)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(v)
			if err != nil {
				return err
			}
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.keccaksum/config.yaml)")
	setupFlags(cmd)
	cobra.CheckErr(v.BindPFlags(cmd.Flags()))
	return cmd
}

func setupFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("bits", "b", 256, "digest width in bits: 256 or 512")
	cmd.Flags().BoolP("double", "d", false, "hash the digest once more (Keccak(Keccak(m)))")
	cmd.Flags().String("hmac-key", "", "hex-encoded key; print HMAC-Keccak tags instead of digests")
	cmd.Flags().BoolP("string", "s", false, "hash the arguments themselves instead of reading files")
	cmd.Flags().Int("glog-v", 0, "glog verbosity; 1 logs every input hashed")
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Expand("~/.keccaksum")
		if err != nil {
			return errors.Wrap(err, "locating config directory")
		}
		v.AddConfigPath(home)
		v.SetConfigName("config")
	}

	// Environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading config")
	}
	return nil
}

func setupLogging(v *viper.Viper) {
	_ = flag.Set("v", fmt.Sprintf("%d", v.GetInt("glog-v")))
	_ = flag.Set("logtostderr", "true")
}
