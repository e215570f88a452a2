// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics collects Prometheus metrics for ballots, menu fetches and
// HTTP responses.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Menu fetch outcomes
const (
	FetchLive   = "live"
	FetchCache  = "cache"
	FetchFailed = "failed"
)

// Recorder is what the voting and menu components report to
type Recorder interface {
	RecordBallotAccepted()
	RecordBallotRejected(reason string)
	RecordMenuFetch(outcome string)
	RecordFinalizedSlot(provenance string)
	RecordHTTPStatus(statusCode int)
}

// Collector is the Prometheus-backed Recorder
type Collector struct {
	ballotsAccepted prometheus.Counter
	ballotsRejected *prometheus.CounterVec
	menuFetch       *prometheus.CounterVec
	finalizedSlots  *prometheus.CounterVec
	httpStatus      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		ballotsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "messvote_ballots_accepted_total",
			Help: "Ballots recorded in a weekly ledger",
		}),
		ballotsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "messvote_ballots_rejected_total",
			Help: "Ballots rejected, by reason",
		}, []string{"reason"}),
		menuFetch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "messvote_menu_fetch_total",
			Help: "Menu option loads, by outcome (live, cache, failed)",
		}, []string{"outcome"}),
		finalizedSlots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "messvote_finalized_slots_total",
			Help: "Finalized menu slots, by provenance",
		}, []string{"provenance"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "messvote_http_requests_total",
			Help: "HTTP responses, by status code",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.ballotsAccepted,
		c.ballotsRejected,
		c.menuFetch,
		c.finalizedSlots,
		c.httpStatus,
	)

	return c
}

func (c *Collector) RecordBallotAccepted() {
	c.ballotsAccepted.Inc()
}

func (c *Collector) RecordBallotRejected(reason string) {
	c.ballotsRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordMenuFetch(outcome string) {
	c.menuFetch.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordFinalizedSlot(provenance string) {
	c.finalizedSlots.WithLabelValues(provenance).Inc()
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Nop discards everything
type Nop struct{}

func (Nop) RecordBallotAccepted() {}
func (Nop) RecordBallotRejected(string) {}
func (Nop) RecordMenuFetch(string) {}
func (Nop) RecordFinalizedSlot(string) {}
func (Nop) RecordHTTPStatus(int) {}

// Handler returns the scrape handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
