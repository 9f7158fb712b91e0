package services

import (
	"context"
	"log/slog"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
	"github.com/ceugb69-B/yen-tracker2/internal/scan"
)

// ScanService turns a receipt photo into a draft suggestion. The whole path
// is best-effort: classifier trouble degrades to the default draft with a
// warning and never blocks manual entry.
type ScanService struct {
	classifier scan.Classifier
}

// NewScanService creates the service. classifier may be nil when no API key
// is configured; Suggest then always returns the default draft.
func NewScanService(classifier scan.Classifier) *ScanService {
	return &ScanService{classifier: classifier}
}

// Enabled reports whether a classifier is configured.
func (s *ScanService) Enabled() bool {
	return s.classifier != nil
}

// Suggest downscales the image, calls the classifier, and reconciles its
// output into a draft. The returned draft is always usable.
func (s *ScanService) Suggest(ctx context.Context, image []byte) core.Draft {
	if s.classifier == nil {
		slog.DebugContext(ctx, "Classifier not configured, returning default draft")
		return core.DefaultDraft()
	}

	shrunk, err := scan.ShrinkImage(image, scan.MaxImageDimension)
	if err != nil {
		slog.WarnContext(ctx, "Failed to downscale receipt image, sending original",
			"error", err, "bytes", len(image))
		shrunk = image
	}

	raw, err := s.classifier.ScanReceipt(ctx, shrunk)
	if err != nil {
		slog.WarnContext(ctx, "Receipt classification failed, falling back to default draft",
			"error", err)
		return core.DefaultDraft()
	}

	draft := scan.ReconcileDraft(raw)
	slog.InfoContext(ctx, "Receipt classified",
		"item", draft.Item,
		"amount_yen", draft.Amount,
		"category", draft.Category.String())
	return draft
}
