/*
Package douceuradapter is the parsing boundary of the CSS object model.

It wraps the douceur CSS parser (and gorilla/css, douceur's tokenizer) to
produce ruletree nodes from stylesheet text, single rules, keyframes and
declaration blocks, and it validates selector lists with cascadia, the
selector engine this module relies on.

All syntax failures wrap ErrSyntax, so callers classify them with
errors.Is regardless of which underlying parser rejected the input.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package douceuradapter

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssom.engine'.
func tracer() tracing.Trace {
	return tracing.Select("cssom.engine")
}
