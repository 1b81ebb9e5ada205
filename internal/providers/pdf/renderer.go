// Package pdf renders the documents an order submission produces. The
// renderers are pure transformations of an order snapshot; storage and
// versioning stay with the caller.
package pdf

import (
	"context"
	"fmt"
	"time"

	documentdomain "github.com/orthoflow/orthoflow/internal/document/domain"
)

// Party is a named mailing endpoint on a document.
type Party struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Line is one priced item as the documents show it.
type Line struct {
	ProductName string
	HCPCSCode   string
	Quantity    int64
	UnitPrice   int64
	LineTotal   int64
}

// Snapshot is everything a render needs, captured at one point of the
// order's life. Renders of the same snapshot are byte-for-byte
// reproducible apart from the generation timestamp.
type Snapshot struct {
	OrderID     string
	Status      string
	PayerType   string
	PayerName   string
	Patient     Party
	ClinicName  string
	Clinician   Party
	Lines       []Line
	Total       int64
	Version     int
	GeneratedAt time.Time
}

// Renderer produces document bytes from a snapshot.
type Renderer interface {
	Render(ctx context.Context, docType documentdomain.Type, snap Snapshot) ([]byte, error)
}

type marotoRenderer struct{}

// New returns the maroto-backed renderer.
func New() Renderer {
	return &marotoRenderer{}
}

func (r *marotoRenderer) Render(ctx context.Context, docType documentdomain.Type, snap Snapshot) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	switch docType {
	case documentdomain.TypeEncounter:
		data, err = renderEncounter(snap)
	case documentdomain.TypeInvoice:
		data, err = renderInvoice(snap)
	case documentdomain.TypePOD:
		data, err = renderPOD(snap)
	default:
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// formatCents renders an integer cent amount as a dollar string.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
