/*
blastcli is a command-line front end over the blast bit-vector algebra and
its sha256gate consumer. The gamma0, gamma1, sigma0 and sigma1 sub-commands
read a 32-bit word as an 8-digit hex string from stdin (or the path given
by -in, following the "-" means stdin/stdout convention used elsewhere in
this family of tools) and print the result of one SHA-256 helper function
to stdout; dump deserializes and dumps a stored bit-vector document; and
sha256 prints the SHA-256 digest of its input read as raw bytes.

Examples:

	echo 6a09e667 | go run . gamma0
	go run . dump -in graph.yaml
*/
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	blast "github.com/mathrgo/blast"
	"github.com/mathrgo/blast/sha256gate"
)

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func readWord(path string) (*blast.BitVector, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(trimNewline(string(data)))
	if err != nil {
		return nil, fmt.Errorf("blastcli: decode hex word: %w", err)
	}
	v := new(big.Int).SetBytes(raw)
	return blast.FromBigInt(v, 8*len(raw)), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r' || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	return s
}

func printWord(v *blast.BitVector) error {
	n, err := v.ToBigInt()
	if err != nil {
		return err
	}
	fmt.Printf("%0*x\n", v.Len()/4, n)
	return nil
}

func wordFunc(name string, fn func(*blast.BitVector) (*blast.BitVector, error)) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("apply the SHA-256 %s function to one 32-bit word", name),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := readWord(in)
			if err != nil {
				return err
			}
			out, err := fn(x)
			if err != nil {
				return err
			}
			return printWord(out)
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "input file, or - for stdin")
	return cmd
}

func dumpCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "deserialize a document and print its bitvector's concrete value, if it has one",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openInput(in)
			if err != nil {
				return err
			}
			defer f.Close()
			data, err := io.ReadAll(f)
			if err != nil {
				return err
			}
			v, err := blast.Deserialize(data)
			if err != nil {
				return err
			}
			fmt.Printf("length: %d bits\n", v.Len())
			a := blast.NewAnalysis(v)
			fmt.Printf("distinct output nodes: %d\n", len(a.Outputs()))
			if v.IsConcrete(0, v.Len()) {
				return printWord(v)
			}
			fmt.Printf("free inputs: %d\n", a.InputsLen())
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "input file, or - for stdin")
	return cmd
}

func sha256Cmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "sha256",
		Short: "compute the SHA-256 digest of stdin (or -in), treated as raw bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openInput(in)
			if err != nil {
				return err
			}
			defer f.Close()
			data, err := io.ReadAll(f)
			if err != nil {
				return err
			}
			v := blast.FromBigInt(new(big.Int).SetBytes(data), 8*len(data))
			digest, err := sha256gate.Finalize(v)
			if err != nil {
				return err
			}
			return printWord(digest)
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "input file, or - for stdin")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "blastcli",
		Short: "inspect and drive the blast bit-vector algebra from the command line",
	}
	root.AddCommand(
		wordFunc("gamma0", sha256gate.Gamma0),
		wordFunc("gamma1", sha256gate.Gamma1),
		wordFunc("sigma0", sha256gate.Sigma0),
		wordFunc("sigma1", sha256gate.Sigma1),
		dumpCmd(),
		sha256Cmd(),
	)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
