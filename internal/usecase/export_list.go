package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// ExportListInput contains the parameters for exporting the list.
type ExportListInput struct {
	Board   *domain.Board
	BaseURL string // Overrides the configured share base URL
	WithURL bool   // Also build a share link
	Copy    bool   // Copy the link (or the bare code) to the clipboard
}

// ExportListOutput contains the share code and optional link.
type ExportListOutput struct {
	Token  string
	URL    string
	Copied bool
}

// ExportList is the use case for producing a share code of the whole list.
// The filter is ignored; ids are not exported.
type ExportList struct {
	codec     domain.ShareCodec
	clipboard domain.Clipboard
	logger    domain.Logger
	baseURL   string
}

// NewExportList creates a new ExportList use case.
// baseURL is the configured [share] base_url and may be empty.
func NewExportList(codec domain.ShareCodec, clipboard domain.Clipboard, logger domain.Logger, baseURL string) *ExportList {
	return &ExportList{
		codec:     codec,
		clipboard: clipboard,
		logger:    loggerOrNop(logger),
		baseURL:   baseURL,
	}
}

// Execute encodes the list and optionally builds a link and copies it.
func (uc *ExportList) Execute(_ context.Context, in ExportListInput) (*ExportListOutput, error) {
	token, err := uc.codec.Encode(in.Board.List.Tasks())
	if err != nil {
		return nil, fmt.Errorf("encode share code: %w", err)
	}
	out := &ExportListOutput{Token: token}

	if in.WithURL {
		base := in.BaseURL
		if base == "" {
			base = uc.baseURL
		}
		link, err := uc.codec.Link(base, token)
		if err != nil {
			return nil, err
		}
		out.URL = link
	}

	if in.Copy {
		if uc.clipboard == nil {
			return nil, fmt.Errorf("copy share code: no clipboard available")
		}
		text := out.Token
		if out.URL != "" {
			text = out.URL
		}
		if err := uc.clipboard.WriteAll(text); err != nil {
			return nil, fmt.Errorf("copy share code: %w", err)
		}
		out.Copied = true
	}

	uc.logger.Info("share", fmt.Sprintf("exported %d tasks", in.Board.List.Len()))
	return out, nil
}
