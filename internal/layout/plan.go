package layout

// ZonePlan gives the line widths of the two zones and how many lines
// the top zone holds.
type ZonePlan struct {
	TopLines    int
	TopWidth    int
	BottomWidth int
}

// Plan computes the zones for c's format. It does not validate c.
func Plan(c Config) ZonePlan {
	switch c.Format {
	case FormatHanging:
		return ZonePlan{TopLines: 1, TopWidth: c.Width, BottomWidth: c.Width - c.HangingIndent}
	case FormatFirstLine:
		return ZonePlan{TopLines: 1, TopWidth: c.Width - c.FirstLineIndent, BottomWidth: c.Width}
	case FormatFirstLineAndHanging:
		return ZonePlan{TopLines: 1, TopWidth: c.Width - c.FirstLineIndent, BottomWidth: c.Width - c.HangingIndent}
	case FormatDropCap, FormatDropCapPadded:
		return ZonePlan{
			TopLines:    len(c.DropCap) + c.LinesAfterDropCap,
			TopWidth:    c.Width - c.glyphWidth() - c.dropCapSpacing(),
			BottomWidth: c.Width,
		}
	}
	return ZonePlan{BottomWidth: c.Width}
}
