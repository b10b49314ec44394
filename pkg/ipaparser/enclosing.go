package ipaparser

import "fmt"

// EnclosingError reports that a transcription's input was not framed by one
// of the recognized outer bracket pairs (like [so] or /so/). Grounded on
// danmysak/ipa-parser's _code/exceptions/enclosing.py.
type EnclosingError struct {
	Transcription string
}

func (e *EnclosingError) Error() string {
	return fmt.Sprintf("%q is not properly enclosed in brackets (like [so] or /so/)", e.Transcription)
}
