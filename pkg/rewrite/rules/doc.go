// Package rules provides the built-in rewrite rules for rn2md.
//
// Each rule converts one RedNotebook construct to its Markdown equivalent:
//
//   - italics: //text// -> _text_
//   - strikethrough: --text-- -> ~~text~~
//   - header: =Text= -> # Text (level grows with the = run, plus padding)
//   - list: + item -> 1. item (stateful renumbering across lines)
//   - link: [name ""url""] -> [name](url)
//   - image: [""file://pic"".jpg] -> ![](file://pic.jpg)
//   - backtick: ``code`` -> `code`
//   - underscore: a_b -> a\_b (escapes inner underscores)
//   - first-line header: prefixes the first processed line with "# "
//
// Context-sensitive rules suppress matches that fall inside URL literals,
// already-formed Markdown links, or inline code, by re-scanning the whole
// line through the guards in package rewrite.
//
// # Statefulness
//
// ListRule and FirstLineHeaderRule retain state across successive lines of
// one document. Construct fresh instances per document, normally via
// Standard or Stream.
package rules
