package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"axiapac.com/iclock/config"
	"axiapac.com/iclock/iclock/request"
	"axiapac.com/iclock/infrastructure/filesystem"
	"axiapac.com/iclock/report"
	"axiapac.com/iclock/utils"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type options struct {
	configPath string
	captures   []string
}

func parseArgs(args []string) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet("iclockdump", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.configPath, "config", "c", os.Getenv("ICLOCK_CONFIG"), "config file path or ssm://parameter")
	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	opts.captures = flagSet.Args()
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse arguments: %v", err)
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx, opts.configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("failed to load timezone: %v", err)
	}

	paths, err := expand(ctx, opts.captures)
	if err != nil {
		log.Fatalf("failed to list captures: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("usage: iclockdump [--config path] capture... (local paths or s3://bucket/key)")
	}

	rep := report.New(loc)
	out, closeOut := newEncoder(cfg.Format, os.Stdout)
	failed := 0

	for _, path := range paths {
		fmt.Fprintf(os.Stderr, "Decoding %s\n", path)
		decoded, err := decodeCapture(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding %s: %v\n", path, err)
			failed++
			continue
		}

		switch v := decoded.(type) {
		case request.GetRequest:
			rep.AddGetRequest(v)
		case request.CdataRequest:
			rep.AddCdataRequest(v)
		}
		if out != nil {
			if err := out(decoded); err != nil {
				log.Fatalf("failed to write %s: %v", path, err)
			}
		}
	}

	if err := closeOut(); err != nil {
		log.Fatalf("failed to flush output: %v", err)
	}
	if cfg.Format == config.FormatCSV {
		if err := rep.WriteCSV(os.Stdout); err != nil {
			log.Fatalf("failed to write csv: %v", err)
		}
	}
	if cfg.XLSX != "" {
		if err := writeWorkbook(rep, cfg.XLSX); err != nil {
			log.Fatalf("failed to export %s: %v", cfg.XLSX, err)
		}
		fmt.Fprintf(os.Stderr, "Exported %s\n", cfg.XLSX)
	}

	fmt.Fprintf(os.Stderr, "Decoded %d of %d captures\n", len(paths)-failed, len(paths))
	if failed > 0 {
		os.Exit(1)
	}
}

// expand replaces s3://bucket/prefix/ arguments with the objects under them.
func expand(ctx context.Context, args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "s3://") && strings.HasSuffix(arg, "/") {
			bucket, prefix, _ := strings.Cut(strings.TrimPrefix(arg, "s3://"), "/")
			keys, err := filesystem.ListObjects(ctx, bucket, prefix)
			if err != nil {
				return nil, err
			}
			paths = append(paths, keys...)
			continue
		}
		paths = append(paths, arg)
	}
	return paths, nil
}

func decodeCapture(ctx context.Context, path string) (any, error) {
	data, err := filesystem.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	r, err := request.ReadCapture(data)
	if err != nil {
		return nil, err
	}
	return request.Decode(r)
}

// newEncoder returns a nil encode func for formats written once at the end.
func newEncoder(format string, w io.Writer) (func(any) error, func() error) {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode, func() error { return nil }
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return enc.Encode, enc.Close
	}
	return nil, func() error { return nil }
}

func writeWorkbook(rep *report.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rep.WriteWorkbook(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
