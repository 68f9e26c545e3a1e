// Package envfile reads and writes the dotenv-style files generated projects
// use for their database settings.
//
// The grammar follows the rules of the Node dotenv package that generated
// projects load their settings with: KEY=VALUE assignments, comments, blank
// lines, an optional "export " prefix, unquoted values ending at "#", and
// single-, double- or backtick-quoted values. Variable expansion is not
// supported. Values accepted by ValidateValue and written with FormatValue read
// back to the same string in both parsers.
package envfile
