package main

import (
	"fmt"
	"io"
	"os"

	"github.com/govalues/decint"
	"github.com/govalues/decint/internal/config"
	"github.com/govalues/decint/internal/rsa"
	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

const errorPrefix = "decint: "

var (
	app = kingpin.New("decint", "RSA key derivation and ciphertext matching on decimal big integers.")

	configPath = app.Flag("config", "YAML configuration file. Settings can also be given as DECINT_* environment variables.").Short('c').String()

	derive       = app.Command("derive", "Derive the private exponent from hexadecimal p, q and e.")
	deriveInput  = derive.Arg("input", "File with p, q and e in hexadecimal.").Required().String()
	deriveOutput = derive.Arg("output", "File to write the private exponent to, or -1 if it does not exist.").Required().String()

	match       = app.Command("match", "Find the ciphertext of every plaintext among candidate ciphertexts.")
	matchInput  = match.Arg("input", "File with the counts, n, e, plaintexts and ciphertexts.").Required().String()
	matchOutput = match.Arg("output", "File to write the ciphertext indexes to, -1 for no match.").Required().String()

	hexToDec      = app.Command("hex2dec", "Convert an uppercase hexadecimal integer to decimal.")
	hexToDecValue = hexToDec.Arg("value", "Hexadecimal integer.").Required().String()

	decToHex      = app.Command("dec2hex", "Convert a decimal integer to uppercase hexadecimal.")
	decToHexValue = decToHex.Arg("value", "Decimal integer.").Required().String()

	args = os.Args[1:]
)

var logger = flogging.MustGetLogger("decint")

func main() {
	app.Version("0.0.1")
	app.HelpFlag.Short('h')

	command, err := app.Parse(args)
	if err != nil {
		app.Fatalf("parsing arguments: %s. Try --help", err)
		return
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s%s\n", errorPrefix, err)
		os.Exit(1)
	}
	err = flogging.Global.Apply(flogging.Config{
		Format:  conf.Logging.Format,
		LogSpec: conf.Logging.Spec,
		Writer:  os.Stderr,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sconfiguring logging: %s\n", errorPrefix, err)
		os.Exit(1)
	}

	// Command logic
	switch command {

	case derive.FullCommand():
		err = runDerive(*deriveInput, *deriveOutput)

	case match.FullCommand():
		err = runMatch(*matchInput, *matchOutput)

	case hexToDec.FullCommand():
		err = runConvert(os.Stdout, *hexToDecValue, decint.ParseHex, decint.Int.String)

	case decToHex.FullCommand():
		err = runConvert(os.Stdout, *decToHexValue, decint.Parse, decint.Int.Hex)

	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s%s\n", errorPrefix, err)
		os.Exit(1)
	}
}

func runDerive(input, output string) error {
	log := logger.With(zap.String("input", input), zap.String("output", output))

	f, err := os.Open(input)
	if err != nil {
		return errors.WithMessage(err, "opening input")
	}
	defer f.Close()
	params, err := rsa.ReadKeyParams(f)
	if err != nil {
		return errors.WithMessagef(err, "reading %s", input)
	}

	key, derr := rsa.DeriveKey(params)
	switch {
	case derr == nil:
		log.Debugf("derived private exponent with %d digits", key.D.Prec())
	case !errors.Is(derr, decint.ErrNoInverse):
		return derr
	}

	return writeFile(output, func(w io.Writer) error {
		return rsa.WriteKey(w, key, derr)
	})
}

func runMatch(input, output string) error {
	log := logger.With(zap.String("input", input), zap.String("output", output))

	f, err := os.Open(input)
	if err != nil {
		return errors.WithMessage(err, "opening input")
	}
	defer f.Close()
	in, err := rsa.ReadMatchInput(f)
	if err != nil {
		return errors.WithMessagef(err, "reading %s", input)
	}
	log.Debugf("matching %d plaintexts against %d ciphertexts", len(in.Plaintexts), len(in.Ciphertexts))

	matches, err := rsa.MatchCiphertexts(in)
	if err != nil {
		return err
	}

	return writeFile(output, func(w io.Writer) error {
		return rsa.WriteMatches(w, matches)
	})
}

// writeFile creates the file at path and fills it with write.
// The file is removed again if write fails.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithMessage(err, "creating output")
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return errors.WithMessage(f.Close(), "closing output")
}

func runConvert(w io.Writer, value string, parse func(string) (decint.Int, error), format func(decint.Int) string) error {
	x, err := parse(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, format(x))
	return errors.Wrap(err, "writing result")
}
