package main

import (
	"hasher/internal/hash"
	"hasher/internal/input"
	"hasher/internal/logging"

	"github.com/spf13/cobra"
)

// defaultHash is used when --hash is not given at all. A name that is given
// but not recognised falls through to hash.Default instead.
const defaultHash = "sha3_512"

const longHelp = `Hash each line read from standard input and print the hex digests.

The supported list of hashes is
Sha3:
    sha3_224
    sha3_256
    sha3_384
    sha3_512

md:
    md2
    md4
    md5

ripemd:
    ripemd160
    ripemd320

Whirlpool:
    whirlpool

Without --hash, sha3_512 is used. An unrecognised name silently selects md5.`

func newRootCmd() *cobra.Command {
	var (
		algo    string
		hide    bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:     "hasher",
		Short:   "Simple hash tool",
		Long:    longHelp,
		Version: buildVersion(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			logger, err := logging.New(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			var src input.LineSource
			if hide {
				src = input.NewMasked(cmd.InOrStdin(), cmd.ErrOrStderr())
			} else {
				src = input.NewLines(cmd.InOrStdin())
			}

			return hash.Run(
				hash.WithAlgorithm(algo),
				hash.WithSource(src),
				hash.WithStdout(cmd.OutOrStdout()),
				hash.WithLogger(logger),
			)
		},
	}

	// -h belongs to --hash, so help is long-form only.
	cmd.Flags().Bool("help", false, "help for hasher")
	cmd.Flags().StringVarP(&algo, "hash", "h", defaultHash, "hash type (see above for the supported list)")
	cmd.Flags().BoolVar(&hide, "hide", false, "hide input from terminal")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug information to stderr")

	return cmd
}
