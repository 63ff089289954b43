package main

import (
	"classical-cipher-backend/crypto"
	"classical-cipher-backend/dispatcher"
	"classical-cipher-backend/loader"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type transformFlags struct {
	algorithm string
	key       string
	text      string
	file      string
}

func newTransformCmd(app *cli, direction string) *cobra.Command {
	flags := &transformFlags{}

	cmd := &cobra.Command{
		Use:   direction + " [text...]",
		Short: fmt.Sprintf("%s text with a classical cipher", strings.ToUpper(direction[:1])+direction[1:]),
		Example: fmt.Sprintf(`  cipher %[1]s -a vigenere -k LEMON "attack at dawn"
  cipher %[1]s -a playfair -k "playfair example" -f message.txt
  cipher %[1]s -a hill -k GYBNQKURP -t ACT`, direction),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dispatcher.ParseDirection(direction)
			if err != nil {
				return err
			}
			alg, err := dispatcher.ParseAlgorithm(flags.algorithm)
			if err != nil {
				return err
			}
			text, err := app.inputText(flags, args)
			if err != nil {
				return err
			}

			app.logger.Debug("Running cipher",
				zap.Stringer("algorithm", alg),
				zap.Stringer("direction", dir),
				zap.Int("bytes", len(text)))

			result, err := dispatcher.Run(dispatcher.Request{
				Text:      text,
				Key:       flags.key,
				Algorithm: alg,
				Direction: dir,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().StringVarP(&flags.algorithm, "algorithm", "a", "", "cipher to use: vigenere, playfair, hill (or 1, 2, 3)")
	cmd.Flags().StringVarP(&flags.key, "key", "k", "", "cipher key")
	cmd.Flags().StringVarP(&flags.text, "text", "t", "", "text to transform")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "read the text from a file")
	_ = cmd.MarkFlagRequired("algorithm")
	cmd.MarkFlagsMutuallyExclusive("text", "file")

	return cmd
}

// inputText picks the text from --text, --file, or the positional arguments.
func (app *cli) inputText(flags *transformFlags, args []string) (string, error) {
	switch {
	case flags.text != "":
		return flags.text, nil
	case flags.file != "":
		return loader.LoadFile(flags.file, app.cfg.Limits.MaxTextBytes)
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}
	return "", errors.New("no input text: use --text, --file or positional arguments")
}

func newHillInverseCmd(app *cli) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "hill-inverse",
		Short: "Print the Hill key that decrypts text encrypted with --key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inverse, err := crypto.HillInverseKey(key)
			if err != nil {
				return err
			}
			app.logger.Debug("Computed inverse key", zap.Int("size", len(inverse)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), inverse)
			return err
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Hill encryption key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
