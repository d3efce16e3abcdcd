package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/registrar/internal/registrar/domain"

	"github.com/charmbracelet/huh"
)

// RecordLister is the slice of the registrar service the record picker needs.
type RecordLister interface {
	ListRecords(ctx context.Context, domainName string) ([]domain.Record, error)
}

// DeleteRecordForm fetches the records of domainName, lets the user pick
// one and asks for confirmation before returning it.
func DeleteRecordForm(ctx context.Context, svc RecordLister, domainName string) (*domain.Record, error) {
	accessible := Accessible()

	var records []domain.Record
	err := Spin(os.Stderr, "Fetching records...", func(context.Context) error {
		var err error
		records, err = svc.ListRecords(ctx, domainName)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records found for %s", domainName)
	}

	byID := make(map[string]domain.Record, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	var selectedID string
	opts := buildRecordOptions(records)

	selectField := huh.NewSelect[string]().
		Title("Select record to delete").
		Options(opts...).
		Value(&selectedID).
		Height(min(max(len(opts), 5), 12))

	summary := huh.NewNote().
		Title("Record details").
		DescriptionFunc(func() string {
			if r, ok := byID[selectedID]; ok {
				return buildRecordSummary(r)
			}
			return ""
		}, &selectedID)

	confirm := false
	confirmField := huh.NewConfirm().
		Title("Delete this record? This action cannot be undone.").
		Affirmative("Yes, delete").
		Negative("Cancel").
		Value(&confirm)

	if err := runForm(accessible,
		huh.NewGroup(selectField),
		huh.NewGroup(summary, confirmField),
	); err != nil {
		return nil, err
	}
	if !confirm {
		return nil, ErrAborted
	}

	rec := byID[selectedID]
	return &rec, nil
}

func buildRecordOptions(records []domain.Record) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(records))
	for _, r := range records {
		options = append(options, huh.NewOption(recordOptionLabel(r), r.ID))
	}
	return options
}

// recordOptionLabel formats a record for display in the selection list.
func recordOptionLabel(r domain.Record) string {
	content := r.Content
	if len(content) > 40 {
		content = content[:37] + "..."
	}
	parts := []string{string(r.Type), r.Name, content}
	if r.Priority > 0 {
		parts = append(parts, fmt.Sprintf("prio %d", r.Priority))
	}
	return strings.Join(parts, " - ")
}

func buildRecordSummary(r domain.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Name: %s\n", r.Name)
	fmt.Fprintf(&b, "Type: %s\n", r.Type)
	fmt.Fprintf(&b, "Content: %s\n", r.Content)
	if r.TTL > 0 {
		fmt.Fprintf(&b, "TTL: %d\n", r.TTL)
	}
	if r.Priority > 0 || r.Type.HasPriority() {
		fmt.Fprintf(&b, "Priority: %d\n", r.Priority)
	}
	if r.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", r.Notes)
	}

	return strings.TrimSpace(b.String())
}
