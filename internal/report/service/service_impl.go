package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alsopranab/restaurant-analytics/internal/clock"
	"github.com/alsopranab/restaurant-analytics/internal/config"
	"github.com/alsopranab/restaurant-analytics/internal/providers/email"
	"github.com/alsopranab/restaurant-analytics/internal/report/csvenc"
	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrInvalidParams = errors.New("invalid_service_params")

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
	Repo   domain.Repository
	Email  email.Provider
	Clock  clock.Clock
	GenID  *snowflake.Node
}

type service struct {
	cfg   config.Config
	log   *zap.Logger
	repo  domain.Repository
	email email.Provider
	clock clock.Clock
	genID *snowflake.Node
}

func New(p Params) (domain.Service, error) {
	if p.Log == nil || p.Repo == nil || p.Email == nil || p.Clock == nil || p.GenID == nil {
		return nil, ErrInvalidParams
	}
	return &service{
		cfg:   p.Config,
		log:   p.Log.Named("report"),
		repo:  p.Repo,
		email: p.Email,
		clock: p.Clock,
		genID: p.GenID,
	}, nil
}

// Run executes the pipeline once: read, join, normalize, aggregate, assemble,
// write, notify. Any failure aborts the run with no partial output.
func (s *service) Run(ctx context.Context) (*domain.RunResult, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	runID := s.genID.Generate().String()
	log := s.log.With(zap.String("run_id", runID))
	log.Info("report run starting")

	if err := s.repo.Ping(ctx); err != nil {
		return nil, err
	}
	lines, err := s.repo.FetchOrderLines(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.FetchMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("source materialized",
		zap.Int("order_lines", len(lines)),
		zap.Int("menu_items", len(items)),
	)

	joined := Join(lines, items)
	normalized, err := Normalize(joined)
	if err != nil {
		return nil, err
	}

	popularity := AggregateItemPopularity(normalized)
	orders := AggregateOrderValues(normalized)
	categories := AggregateCategoryPerformance(normalized)

	rows, err := Assemble(normalized, popularity, orders, categories)
	if err != nil {
		return nil, err
	}
	log.Info("report assembled",
		zap.Int("joined_rows", len(normalized)),
		zap.Int("report_rows", len(rows)),
		zap.Int("categories", len(categories)),
	)

	var out bytes.Buffer
	if err := csvenc.Encode(&out, rows); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	// The file appears at its final path only once the notification is out:
	// a failed run leaves neither artifact behind.
	outputPath := s.cfg.Report.OutputPath
	tmpPath := outputPath + ".tmp"
	if err := os.WriteFile(tmpPath, out.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report file: %w", err)
	}

	result := &domain.RunResult{
		RunID:       runID,
		OrderLines:  len(lines),
		JoinedRows:  len(normalized),
		ReportRows:  len(rows),
		OutputPath:  outputPath,
		GeneratedAt: s.clock.Now(),
	}
	if ranked := RankItems(popularity, false); len(ranked) > 0 {
		result.MostOrdered = &ranked[0]
	}
	if ranked := RankItems(popularity, true); len(ranked) > 0 {
		result.LeastOrdered = &ranked[0]
	}

	msg := email.Message{
		To:      []string{s.cfg.Email.Recipient},
		Subject: s.cfg.Report.Subject,
		Body:    notificationBody(result),
		Attachment: &email.Attachment{
			Filename:    filepath.Base(outputPath),
			ContentType: `text/csv; charset="UTF-8"`,
			Data:        out.Bytes(),
		},
	}
	if err := s.email.Send(ctx, msg); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to send notification: %w", err)
	}
	log.Info("notification sent", zap.String("recipient", s.cfg.Email.Recipient))

	if err := os.Rename(tmpPath, outputPath); err != nil {
		return nil, fmt.Errorf("failed to finalize report file: %w", err)
	}
	log.Info("report written", zap.String("path", outputPath))

	return result, nil
}

func notificationBody(r *domain.RunResult) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Restaurant orders report, run %s\n", r.RunID)
	fmt.Fprintf(&b, "Generated at %s\n\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Order lines read: %d\n", r.OrderLines)
	fmt.Fprintf(&b, "Joined rows: %d\n", r.JoinedRows)
	fmt.Fprintf(&b, "Report rows: %d\n", r.ReportRows)
	if r.MostOrdered != nil {
		fmt.Fprintf(&b, "Most ordered item: %s (%s, %d lines)\n",
			r.MostOrdered.Name, r.MostOrdered.Category, r.MostOrdered.OrderCount)
	}
	if r.LeastOrdered != nil {
		fmt.Fprintf(&b, "Least ordered item: %s (%s, %d lines)\n",
			r.LeastOrdered.Name, r.LeastOrdered.Category, r.LeastOrdered.OrderCount)
	}
	fmt.Fprintf(&b, "\nThe full report is attached as %s.\n", filepath.Base(r.OutputPath))
	return b.String()
}
