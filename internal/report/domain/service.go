package domain

import (
	"context"
	"errors"
	"time"
)

// RunResult summarizes one completed report run.
type RunResult struct {
	RunID        string
	OrderLines   int
	JoinedRows   int
	ReportRows   int
	OutputPath   string
	MostOrdered  *ItemPopularity
	LeastOrdered *ItemPopularity
	GeneratedAt  time.Time
}

// Service runs the full extract-transform-aggregate-deliver pipeline once.
type Service interface {
	Run(ctx context.Context) (*RunResult, error)
}

var (
	// ErrSourceUnavailable: the relational source connection cannot be established.
	ErrSourceUnavailable = errors.New("source_unavailable")
	// ErrQuery: a read query failed server-side.
	ErrQuery = errors.New("query_failed")
	// ErrInvalidPrice: a menu item carries a negative unit price.
	ErrInvalidPrice = errors.New("invalid_price")
	// ErrInvalidOrderTime: an order time is malformed or outside [00:00:00, 24:00:00).
	ErrInvalidOrderTime = errors.New("invalid_order_time")
	// ErrAssemblyInvariant: an aggregate lookup key was missing for a joined row.
	ErrAssemblyInvariant = errors.New("assembly_invariant_violation")
	// ErrDataIntegrity: the assembled table failed the post-assembly audit.
	ErrDataIntegrity = errors.New("data_integrity_violation")
)
