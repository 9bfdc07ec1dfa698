// Package token provides tokenization of configuration text.
//
// [Tokenize] is a function for tokenizing bytes. Positions of tokens are
// reported as [Pos] values which resolve to line and column through the
// [PosDoc] built while tokenizing.
package token
