// Command optsbuf builds and inspects parser option buffers.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/rawbytedev/parseopts"
	"github.com/rawbytedev/parseopts/pkg/bufferfile"
	"github.com/rawbytedev/parseopts/pkg/manifest"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-shortfile", false, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "optsbuf",
		Short: "parser options buffer utility",
		Long:  `Encode YAML manifests into parser option buffers and decode them back`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("optsbuf: version %q\n", version.Core())
			}
			return nil
		},
	}
	cmdRoot.AddCommand(cmdEncode())
	cmdRoot.AddCommand(cmdDecode())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdEncode() *cobra.Command {
	var outputFile string
	compress := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "write the buffer to file")
		cmd.Flags().BoolVar(&compress, "zstd", compress, "compress the buffer with zstd")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "encode <manifest.yaml>",
		Short:        "encode a YAML manifest into an options buffer",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if outputFile == "" {
				return fmt.Errorf("error: --output is required")
			}

			data, err := encodeManifest(args[0])
			if err != nil {
				return err
			}
			comp := bufferfile.CompRaw
			if compress {
				comp = bufferfile.CompZstd
			}
			if err := bufferfile.Write(outputFile, data, comp); err != nil {
				return err
			}
			if debug {
				log.Printf("%s: encoded %d bytes (zstd %v)\n", outputFile, len(data), compress)
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdDecode() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "decode <buffer-file>",
		Short:        "decode an options buffer and print it as YAML",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			data, err := bufferfile.Read(args[0])
			if err != nil {
				return err
			}
			if debug {
				log.Printf("%s: read %d bytes\n", args[0], len(data))
			}
			return decodeBuffer(data, cmd.OutOrStdout())
		},
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "show the version of this tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version.String())
			return nil
		},
	}
	return cmd
}

func encodeManifest(path string) ([]byte, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	m, err := manifest.Load(fd)
	if err != nil {
		return nil, err
	}
	o, err := m.Options()
	if err != nil {
		return nil, err
	}
	defer o.Release()
	return parseopts.AppendOptions(nil, o)
}
