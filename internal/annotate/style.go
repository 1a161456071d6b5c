package annotate

import "github.com/pkg/errors"

// Style is the ANSI escape sequence starting a colored span.
type Style string

const (
	StyleHeader    Style = "\033[95m"
	StyleBlue      Style = "\033[94m"
	StyleGreen     Style = "\033[92m"
	StyleWarning   Style = "\033[93m"
	StyleFail      Style = "\033[91m"
	StyleBold      Style = "\033[1m"
	StyleUnderline Style = "\033[4m"

	// Reset ends a colored span.
	Reset = "\033[0m"
)

var ErrUnknownStyle = errors.New("unknown style")

// ParseStyle returns the style registered under name.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "header":
		return StyleHeader, nil
	case "blue":
		return StyleBlue, nil
	case "green":
		return StyleGreen, nil
	case "warning":
		return StyleWarning, nil
	case "fail":
		return StyleFail, nil
	case "bold":
		return StyleBold, nil
	case "underline":
		return StyleUnderline, nil
	default:
		return "", errors.Wrapf(ErrUnknownStyle, "%q", name)
	}
}

// Wrap surrounds text with the style and a reset.
func (s Style) Wrap(text string) string {
	return string(s) + text + Reset
}
