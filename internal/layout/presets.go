package layout

// Option adjusts the fill characters used by the preset functions.
type Option func(*Config)

// WithPad sets the characters filling the left and right sides.
func WithPad(left, right rune) Option {
	return func(c *Config) {
		c.LeftPad = left
		c.RightPad = right
	}
}

// WithInnerWS sets the character placed between words.
func WithInnerWS(r rune) Option {
	return func(c *Config) { c.InnerWS = r }
}

// Left lays text out left aligned with no decoration.
func Left(text string, width int, opts ...Option) ([]string, error) {
	return preset(text, width, AlignLeft, opts)
}

// Right lays text out right aligned with no decoration.
func Right(text string, width int, opts ...Option) ([]string, error) {
	return preset(text, width, AlignRight, opts)
}

// Center lays text out centered with no decoration.
func Center(text string, width int, opts ...Option) ([]string, error) {
	return preset(text, width, AlignCenter, opts)
}

// Justified lays text out fully justified, last line included.
func Justified(text string, width int, opts ...Option) ([]string, error) {
	return preset(text, width, AlignJustify, opts)
}

// JustifiedLeft justifies text and left aligns the last line.
func JustifiedLeft(text string, width int, opts ...Option) ([]string, error) {
	return preset(text, width, AlignJustifyLeft, opts)
}

// JustifiedRight justifies text and right aligns the last line.
func JustifiedRight(text string, width int, opts ...Option) ([]string, error) {
	return preset(text, width, AlignJustifyRight, opts)
}

func preset(text string, width int, a Alignment, opts []Option) ([]string, error) {
	c := DefaultConfig()
	for _, o := range opts {
		o(&c)
	}
	c.Width = width
	c.Alignment = a
	c.Format = FormatNone
	return Layout(text, c)
}
