package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

func renderPOD(snap Snapshot) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Proof of Delivery", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(16,
		col.New(6).Add(
			text.New("Order: "+snap.OrderID, props.Text{Top: 0}),
			text.New("Version: "+fmt.Sprintf("%d", snap.Version), props.Text{Top: 4}),
			text.New("Generated: "+snap.GeneratedAt.Format("2006-01-02 15:04"), props.Text{Top: 8}),
		),
		col.New(6),
	)

	m.AddRow(30,
		col.New(12).Add(
			text.New("Deliver to", props.Text{Style: fontstyle.Bold}),
			text.New(snap.Patient.Name, props.Text{Top: 5}),
			text.New(snap.Patient.Address, props.Text{Top: 9}),
			text.New(snap.Patient.Phone, props.Text{Top: 13}),
		),
	)

	m.AddRow(10,
		text.NewCol(7, "Item", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "HCPCS", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, line := range snap.Lines {
		m.AddRow(12,
			text.NewCol(7, line.ProductName, props.Text{Size: 9}),
			text.NewCol(3, line.HCPCSCode, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", line.Quantity), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(30,
		col.New(6).Add(
			text.New("Received by: ____________________________", props.Text{Top: 10, Size: 9}),
		),
		col.New(6).Add(
			text.New("Date: ____________________________", props.Text{Top: 10, Size: 9}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
