package pdf

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

func renderInvoice(snap Snapshot) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Patient Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	payer := snap.PayerName
	if payer == "" {
		payer = strings.ReplaceAll(snap.PayerType, "_", " ")
	}

	m.AddRow(20,
		col.New(6).Add(
			text.New("Invoice number: "+snap.OrderID+"-"+fmt.Sprintf("%d", snap.Version), props.Text{Top: 0}),
			text.New("Date of issue: "+snap.GeneratedAt.Format("2006-01-02"), props.Text{Top: 4}),
			text.New("Payer: "+payer, props.Text{Top: 8}),
		),
		col.New(6),
	)

	m.AddRow(35,
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(snap.Patient.Name, props.Text{Top: 5}),
			text.New(snap.Patient.Address, props.Text{Top: 9}),
			text.New(snap.Patient.Email, props.Text{Top: 13}),
		),
		col.New(6).Add(
			text.New("Ordered by", props.Text{Style: fontstyle.Bold}),
			text.New(snap.Clinician.Name, props.Text{Top: 5}),
			text.New(snap.ClinicName, props.Text{Top: 9}),
		),
	)

	m.AddRow(10,
		text.NewCol(5, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "HCPCS", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, line := range snap.Lines {
		m.AddRow(12,
			text.NewCol(5, line.ProductName, props.Text{Size: 9}),
			text.NewCol(2, line.HCPCSCode, props.Text{Size: 9}),
			text.NewCol(1, fmt.Sprintf("%d", line.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatCents(line.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatCents(line.LineTotal), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total due", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, formatCents(snap.Total), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
