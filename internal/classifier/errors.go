package classifier

import "errors"

// Domain errors
var (
	// ErrLexiconRead - Lexicon file could not be read
	ErrLexiconRead = errors.New("classifier: cannot read lexicon file")

	// ErrLexiconParse - Lexicon file is not valid YAML
	ErrLexiconParse = errors.New("classifier: invalid lexicon file")
)
