// Package token defines lexical token kinds, the Token leaf and the static
// syntax facts of the Selawik language.
// Invariants:
//   - A token with a canonical spelling (operator, punctuation, keyword) carries
//     the text from Text(kind) rather than a copy of the source.
//   - Missing tokens have empty Text and a zero-length Span; they never come
//     from the lexer.
//   - Whitespace tokens are real lexer output but never reach the AST.
//   - Keywords are case-sensitive; anything not in the keyword table is Ident.
package token
