package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(12, data.OrgName, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(12,
		text.NewCol(12, "Payment Receipt", props.Text{
			Size:  12,
			Align: align.Center,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Receipt number: "+data.ReceiptNumber, props.Text{Top: 0}),
			text.New("Date paid: "+data.DatePaid, props.Text{Top: 6}),
			text.New("Recorded by: "+data.RecordedBy, props.Text{Top: 12}),
		),
		col.New(6),
	)

	m.AddRow(2, line.NewCol(12))

	m.AddRow(10,
		text.NewCol(6, "Received from", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Remark", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	remark := data.Remark
	if remark == "" {
		remark = "-"
	}
	m.AddRow(12,
		text.NewCol(6, data.FarmerName, props.Text{Size: 9}),
		text.NewCol(4, remark, props.Text{Size: 9}),
		text.NewCol(2, data.Amount, props.Text{Size: 9, Align: align.Right}),
	)

	m.AddRow(2, line.NewCol(12))

	m.AddRow(15,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 11}),
		text.NewCol(2, data.Amount, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right}),
	)

	m.AddRow(15,
		text.NewCol(12, data.FooterLine, props.Text{
			Size:  9,
			Align: align.Center,
			Top:   5,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
