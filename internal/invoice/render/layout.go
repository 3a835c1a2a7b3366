package render

// Page geometry, in points. The table is coordinate-addressed: six
// fixed column offsets, rows advancing at a fixed pitch, and a hard
// vertical boundary past which a new page begins.
const (
	PageTopMargin = 50.0
	RowHeight     = 25.0
	PageBreakY    = 700.0

	colSeq     = 50.0
	colDate    = 90.0
	colService = 170.0
	colRemark  = 280.0
	colTime    = 390.0
	colAmount  = 480.0

	ruleLeft  = 50.0
	ruleRight = 560.0

	remarkLimit        = 25
	paymentRemarkLimit = 30
)

// RowPos places one table row: its page (0-based) and baseline y.
type RowPos struct {
	Page int
	Y    float64
}

// PlanRows assigns n rows to pages. Rows advance RowHeight at a time
// from startY on page 0; a row whose cursor has passed PageBreakY
// starts the next page at the top margin.
func PlanRows(startY float64, n int) []RowPos {
	positions := make([]RowPos, 0, n)
	page := 0
	y := startY
	for i := 0; i < n; i++ {
		if y > PageBreakY {
			page++
			y = PageTopMargin
		}
		positions = append(positions, RowPos{Page: page, Y: y})
		y += RowHeight
	}
	return positions
}

// PageCount reports how many pages PlanRows would span.
func PageCount(startY float64, n int) int {
	if n == 0 {
		return 1
	}
	positions := PlanRows(startY, n)
	return positions[len(positions)-1].Page + 1
}
