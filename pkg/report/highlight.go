package report

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/muesli/termenv"
)

// Highlight writes src to w, colored as the given chroma language (for
// example "YAML" or "JSON") using the terminal's color profile.
func Highlight(w io.Writer, src, language string, style *chroma.Style, profile termenv.Profile) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("lexer tokenize: %w", err)
	}

	err = formatterFor(profile).Format(w, style, iterator)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	return nil
}

func formatterFor(profile termenv.Profile) chroma.Formatter {
	name := "noop"
	switch profile {
	case termenv.TrueColor:
		name = "terminal16m"
	case termenv.ANSI256:
		name = "terminal256"
	case termenv.ANSI:
		name = "terminal8"
	case termenv.Ascii:
	}

	return formatters.Get(name)
}
