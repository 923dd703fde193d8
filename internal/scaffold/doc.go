// Package scaffold creates the files for a new ACF block: the block
// directory with its block.json and render template, the stylesheet stub,
// the style index import, and the registration call in the theme's
// functions file. Templates are embedded and rendered with text/template.
package scaffold
