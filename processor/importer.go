package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fms-app/documents"
	"fms-app/fms/booking"
	"fms-app/models"
	"fms-app/notify"
	"fms-app/services"

	"github.com/gofiber/fiber/v2/log"
)

const processName = "batch_booking_import"

type ledger interface {
	Processed(ctx context.Context, filename string) (bool, error)
	MarkProcessed(ctx context.Context, entry models.FileLog) error
	LogRow(ctx context.Context, entry models.IntegrationLog)
}

type batchCreator interface {
	CreateBatch(ctx context.Context, in services.BatchInput, actor int) (services.BatchResult, error)
}

type importer struct {
	ledger         ledger
	bookings       batchCreator
	mailer         notify.Mailer
	unprocessedDir string
	processedDir   string
	recipients     []string
}

// checkUnprocessedFiles imports every BATCH_ file waiting in the unprocessed folder.
func (im *importer) checkUnprocessedFiles(ctx context.Context) (int, error) {
	var files []string
	for _, pattern := range []string{"BATCH_*.xlsx", "BATCH_*.csv"} {
		matches, err := filepath.Glob(filepath.Join(im.unprocessedDir, pattern))
		if err != nil {
			return 0, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	done := 0
	for _, file := range files {
		imported, err := im.processFile(ctx, file)
		if err != nil {
			log.Errorw("import file failed", "file", file, "error", err)
			continue
		}
		if imported {
			done++
		}
	}
	return done, nil
}

func (im *importer) processFile(ctx context.Context, path string) (bool, error) {
	name := filepath.Base(path)

	seen, err := im.ledger.Processed(ctx, name)
	if err != nil {
		return false, err
	}
	if seen {
		log.Warnw("file already processed, skip", "file", name)
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	batch, err := parseFile(path)
	if err != nil {
		im.logFile(ctx, name, "ERROR", err.Error())
		return true, im.finish(ctx, name, path, info.ModTime(), nil, 0)
	}

	res, err := im.bookings.CreateBatch(ctx, services.BatchInput{Mode: batch.Mode, Schedule: batch.Schedule, Rows: batch.Rows}, 0)
	if vf, invalid := booking.AsValidationFailed(err); invalid {
		im.logFile(ctx, name, "ERROR", describe(vf.Result))
		for _, skip := range res.Skipped {
			im.logRow(ctx, name, skip)
		}
		return true, im.finish(ctx, name, path, info.ModTime(), nil, len(batch.Rows))
	}
	if err != nil {
		return false, err
	}

	skipped := map[int]bool{}
	for _, skip := range res.Skipped {
		skipped[skip.Row] = true
		im.logRow(ctx, name, skip)
	}
	created := make([]string, 0, len(res.Created))
	next := 0
	for row := 1; row <= len(batch.Rows) && next < len(res.Created); row++ {
		if skipped[row] {
			continue
		}
		b := res.Created[next]
		next++
		created = append(created, b.BookingNo)
		im.ledger.LogRow(ctx, models.IntegrationLog{
			ProcessName: processName,
			FileName:    name,
			RowNo:       row,
			BookingNo:   b.BookingNo,
			LogLevel:    "INFO",
			Message:     "draft booking created",
		})
	}

	return true, im.finish(ctx, name, path, info.ModTime(), created, len(res.Skipped))
}

// finish records the file as processed, moves it out of the inbox and mails the summary.
func (im *importer) finish(ctx context.Context, name, path string, modified time.Time, created []string, skipped int) error {
	err := im.ledger.MarkProcessed(ctx, models.FileLog{
		Filename:     name,
		DateModified: modified,
		Created:      len(created),
		Skipped:      skipped,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(im.processedDir, 0o755); err != nil {
		return err
	}
	if err := moveFile(path, filepath.Join(im.processedDir, name)); err != nil {
		return err
	}
	log.Infow("import file processed", "file", name, "created", len(created), "skipped", skipped)

	if len(im.recipients) == 0 {
		return nil
	}
	if err := im.mailer.Send(notify.ImportSummaryMail(im.recipients, name, created, skipped)); err != nil {
		log.Warnw("import summary mail failed", "file", name, "error", err)
	}
	return nil
}

// moveFile renames src to dst, falling back to copy and delete across volumes.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		in.Close()
		return err
	}
	_, err = io.Copy(out, in)
	in.Close()
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Remove(src)
}

func parseFile(path string) (documents.BatchFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return documents.BatchFile{}, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return documents.ParseBatchCSV(f)
	}
	return documents.ParseBatchWorkbook(f)
}

func describe(res booking.ValidationResult) string {
	parts := make([]string, 0, len(res.Fields))
	for _, field := range res.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, res.Errors[field]))
	}
	return strings.Join(parts, "; ")
}

func (im *importer) logRow(ctx context.Context, file string, skip services.BatchSkip) {
	im.ledger.LogRow(ctx, models.IntegrationLog{
		ProcessName: processName,
		FileName:    file,
		RowNo:       skip.Row,
		LogLevel:    "WARN",
		Message:     describe(skip.Result),
	})
}

func (im *importer) logFile(ctx context.Context, file, level, message string) {
	im.ledger.LogRow(ctx, models.IntegrationLog{
		ProcessName: processName,
		FileName:    file,
		LogLevel:    level,
		Message:     message,
	})
}
