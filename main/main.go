// Command utf8cat copies byte streams to stdout as clean UTF-8,
// re-assembling multi-byte characters torn across read boundaries.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/utf8chunk"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var chunkSize int
	var output string

	cmd := &cobra.Command{
		Use:   "utf8cat [file ...]",
		Short: "Reassemble valid UTF-8 from chunked byte streams",
		Long: "utf8cat reads files (or stdin) in fixed-size chunks and writes the\n" +
			"decoded text out, buffering multi-byte characters that a chunk\n" +
			"boundary happens to split. Bytes that can never become valid UTF-8\n" +
			"are dropped; an incomplete character at end of input becomes U+FFFD.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if chunkSize <= 0 {
				return fmt.Errorf("invalid --chunk-size %d", chunkSize)
			}
			dst := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				dst = f
			}
			if len(args) == 0 {
				return catStream(dst, cmd.InOrStdin(), chunkSize)
			}
			for _, name := range args {
				if err := catFile(dst, name, chunkSize); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 4096, "read size in bytes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func catFile(dst io.Writer, name string, chunkSize int) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := catStream(dst, f, chunkSize); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// catStream pumps src through a Chunker in chunkSize blocks, flushing
// once the stream ends so a torn final character still comes out.
func catStream(dst io.Writer, src io.Reader, chunkSize int) error {
	ck := utf8chunk.New()
	buf := make([]byte, chunkSize)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if s, ok := ck.Push(buf[:n]); ok {
				if _, err := io.WriteString(dst, s); err != nil {
					return err
				}
			}
		}
		if rerr != nil {
			if s, ok := ck.Flush(); ok {
				if _, err := io.WriteString(dst, s); err != nil {
					return err
				}
			}
			if rerr == io.EOF {
				return nil
			}
			return rerr
		}
	}
}
