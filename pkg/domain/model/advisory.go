package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/integrity-lab/talos/pkg/domain/types"
)

// ErrorMarker prefixes failed advisories when they are rendered as
// display text. Kept for compatibility with the legacy dashboard.
const ErrorMarker = "⚠️ GenAI Error:"

// Advisory is the tagged result of one text-generation call. Either Text
// is set (success) or Err is set (failure); the failure is carried as a
// value and only formatted to a display string at the presentation
// boundary.
type Advisory struct {
	ID        string         `json:"id"`
	Scenario  types.Scenario `json:"scenario"`
	AssetID   types.AssetID  `json:"asset_id,omitempty"`
	Prompt    string         `json:"-"`
	Text      string         `json:"text,omitempty"`
	Err       error          `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewAdvisory creates a successful advisory
func NewAdvisory(sc types.Scenario, text string) *Advisory {
	return &Advisory{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Scenario:  sc,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// NewFailedAdvisory creates a failed advisory carrying the underlying error
func NewFailedAdvisory(sc types.Scenario, err error) *Advisory {
	return &Advisory{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Scenario:  sc,
		Err:       err,
		CreatedAt: time.Now(),
	}
}

// OK reports whether the advisory succeeded
func (x *Advisory) OK() bool {
	return x.Err == nil
}

// DisplayText renders the advisory for a display surface. Failures are
// converted to the legacy warning-marker string here and nowhere else.
func (x *Advisory) DisplayText() string {
	if x.Err != nil {
		return fmt.Sprintf("%s %s", ErrorMarker, x.Err.Error())
	}
	return x.Text
}

// PanelClass returns the display classification for this advisory:
// the scenario's class on success, error on failure.
func (x *Advisory) PanelClass() types.PanelClass {
	if x.Err != nil {
		return types.PanelError
	}
	return x.Scenario.PanelClass()
}
