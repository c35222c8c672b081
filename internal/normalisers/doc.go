// Package normalisers turns uploaded files into text. Subpackages read one
// format each (PDF, Word, plain text); Registry picks the reader by MIME
// type and ReadFile detects that type from the file name and content.
package normalisers
