package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/op-character-creator/internal/catalog"
	"github.com/KirkDiggler/op-character-creator/internal/datagen"
	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
	"github.com/KirkDiggler/op-character-creator/internal/handlers/data"
)

func newCompileCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the trait spreadsheet export into the data document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := os.Open(in)
			if err != nil {
				return errors.Wrapf(err, "failed to open %s", in)
			}
			defer func() { _ = src.Close() }()

			doc, err := datagen.Compile(src)
			if err != nil {
				return err
			}
			if err := writeDocument(out, doc); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Compiled %d trait values into %s\n", len(doc.TraitValues), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "data/data.csv", "CSV export to read")
	cmd.Flags().StringVar(&out, "out", defaultDataFile, "data document to write")
	return cmd
}

func newRenumberCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "renumber",
		Short: "Renumber trait value ids sequentially from 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := os.Open(file)
			if err != nil {
				return errors.Wrapf(err, "failed to open %s", file)
			}
			doc, err := datagen.Decode(src)
			_ = src.Close()
			if err != nil {
				return err
			}

			n := datagen.Renumber(doc)
			if err := writeDocument(file, doc); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Renumbered %d trait values, ids now run 1 to %d\n", n, n)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", defaultDataFile, "data document to rewrite")
	return cmd
}

func writeDocument(path string, doc *entities.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if err := datagen.Encode(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func newServeDataCmd(opts *rootOptions) *cobra.Command {
	var addr, file string

	cmd := &cobra.Command{
		Use:   "serve-data",
		Short: "Serve the data document over HTTP",
		Long:  `Serve the compiled data document at ` + data.DocumentPath + ` for catalogs configured with a URL.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = opts.cfg.HTTPAddr
			}
			if !cmd.Flags().Changed("file") {
				file = serveFile(opts.cfg.DataSource, file)
			}
			return serveData(cmd.Context(), opts, addr, file)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":3000", "listen address (CREATOR_HTTP_ADDR)")
	cmd.Flags().StringVar(&file, "file", defaultDataFile, "data document to serve (CREATOR_DATA_SOURCE when it is a file)")
	return cmd
}

const defaultDataFile = "out/data.json"

// serveFile picks the document to serve when --file is not given: the
// configured data source unless it is a URL
func serveFile(dataSource, fallback string) string {
	if src, ok := catalog.NewSource(dataSource).(*catalog.FileSource); ok && src.Path != "" {
		return src.Path
	}
	return fallback
}

func serveData(ctx context.Context, opts *rootOptions, addr, file string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	parser, err := catalog.NewService(&catalog.Config{Source: &catalog.FileSource{Path: file}, Logger: opts.logger})
	if err != nil {
		return err
	}
	handler, err := data.NewHandler(&data.HandlerConfig{
		Source: &catalog.FileSource{Path: file},
		Parser: parser,
		Logger: opts.logger,
	})
	if err != nil {
		return err
	}
	if err := handler.Load(ctx); err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		opts.logger.Info("data server starting",
			"addr", addr,
			"path", data.DocumentPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- errors.Wrap(err, "failed to serve")
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		opts.logger.Info("shutting down data server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "graceful shutdown failed")
		}
		return nil
	case err := <-errChan:
		return err
	}
}
