// Package textio reads subtitle files into UTF-8 text.
//
// Byte order marks are stripped (UTF-16 input is transcoded), and input that
// is not valid UTF-8 is run through charset detection so GB18030 and Big5
// subtitles, still common for Chinese releases, can be merged and checked
// without manual conversion.
package textio
