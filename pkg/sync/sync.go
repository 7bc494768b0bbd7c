// Package sync implements the catalog synchronization engine: discovery
// imports of popular titles, full resynchronization of already-imported
// titles, genre reconciliation, trailer selection, and the per-item audit
// trail. Batches are sequential; one item's failure never aborts the rest.
package sync

import (
	"fmt"

	"github.com/streamhaven/catalogd/pkg/machine"
	"github.com/streamhaven/catalogd/pkg/storage"
)

type ItemStatus string

const (
	ItemStatusSuccess ItemStatus = "success"
	ItemStatusError   ItemStatus = "error"
	ItemStatusSkipped ItemStatus = "skipped"
)

// ItemResult is the terminal outcome of one title within a batch.
type ItemResult struct {
	TmdbID int32      `json:"tmdbId"`
	Title  string     `json:"title"`
	Status ItemStatus `json:"status"`
	Reason string     `json:"reason,omitempty"`
	Error  string     `json:"error,omitempty"`
}

type Summary struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Errors  int `json:"errors"`
	Skipped int `json:"skipped"`
}

// BatchReport aggregates one sync run. Summary counts are a pure reduction
// over Results: total always equals len(Results).
type BatchReport struct {
	Results []ItemResult `json:"results"`
	Summary Summary      `json:"summary"`
}

func (r *BatchReport) add(result ItemResult) {
	r.Results = append(r.Results, result)
	r.Summary.Total++
	switch result.Status {
	case ItemStatusSuccess:
		r.Summary.Success++
	case ItemStatusError:
		r.Summary.Errors++
	case ItemStatusSkipped:
		r.Summary.Skipped++
	}
}

// ParseKind maps the request body kind to a media type.
func ParseKind(kind string) (storage.MediaType, error) {
	switch kind {
	case "movies":
		return storage.MediaTypeMovie, nil
	case "series":
		return storage.MediaTypeSeries, nil
	default:
		return "", fmt.Errorf("unknown kind %q", kind)
	}
}

type itemState string

const (
	statePending   itemState = "pending"
	stateFetching  itemState = "fetching"
	stateApplying  itemState = "applying"
	stateSucceeded itemState = "succeeded"
	stateFailed    itemState = "failed"
	stateSkipped   itemState = "skipped"
)

// newItemMachine tracks one item through a batch. Succeeded, failed and
// skipped are terminal; skipped is only reachable during discovery.
func newItemMachine() *machine.StateMachine[itemState] {
	return machine.New(statePending,
		machine.From(statePending).To(stateFetching),
		machine.From(stateFetching).To(stateApplying, stateFailed, stateSkipped),
		machine.From(stateApplying).To(stateSucceeded, stateFailed),
	)
}
