package envfile

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// envLexer switches into the Value state after "=". Values follow dotenv:
	// an unquoted value ends at the first "#" and quoted values may span lines.
	envLexer = lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Comment", Pattern: `#[^\r\n]*`},
			{Name: "Newline", Pattern: `\r?\n`},
			{Name: "Whitespace", Pattern: `[ \t]+`},
			{Name: "Export", Pattern: `export[ \t]+`},
			{Name: "Key", Pattern: `[A-Za-z_][A-Za-z0-9_.]*`},
			{Name: "Assign", Pattern: `=`, Action: lexer.Push("Value")},
		},
		"Value": {
			{Name: "EOL", Pattern: `\r?\n`, Action: lexer.Pop()},
			{Name: "Blank", Pattern: `[ \t]+`},
			{Name: "InlineComment", Pattern: `#[^\r\n]*`},
			{Name: "Quoted", Pattern: `"(\\"|[^"])*"`},
			{Name: "Literal", Pattern: `'[^']*'`},
			{Name: "Backtick", Pattern: "`[^`]*`"},
			{Name: "Raw", Pattern: "[^\\s'\"`#][^#\\r\\n]*"},
		},
	})

	parser = participle.MustBuild[File](
		participle.Lexer(envLexer),
		participle.Elide("Comment", "Whitespace", "Blank", "InlineComment"),
	)
)

type (
	// File is a parsed environment file.
	File struct {
		Entries []*Entry `parser:"( @@ | Newline )*"`
	}

	// Entry is a single KEY=VALUE assignment. Value is nil for "KEY=".
	Entry struct {
		Pos    lexer.Position
		Export bool   `parser:"@Export?"`
		Key    string `parser:"@Key Assign"`
		Value  *Value `parser:"@@? EOL?"`
	}

	// Value holds exactly one of the supported value forms.
	Value struct {
		Quoted   *string `parser:"  @Quoted"`
		Literal  *string `parser:"| @Literal"`
		Backtick *string `parser:"| @Backtick"`
		Raw      *string `parser:"| @Raw"`
	}
)

// Parse parses KEY=VALUE lines from r.
//
// Supported syntax:
//   - blank lines and lines starting with #
//   - an optional "export " prefix
//   - unquoted values, up to the first # (surrounding whitespace trimmed)
//   - double-quoted values, where only \n and \r are expanded
//   - single-quoted and backtick-quoted values, taken literally
//   - inline comments after any value
//
// These are the rules the Node dotenv package applies, so both sides read a
// generated file the same way.
//
// Example:
//
//	f, err := envfile.Parse(strings.NewReader("DB_HOST=localhost\nDB_PORT=3306\n"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	vars, err := f.Map()
func Parse(r io.Reader) (*File, error) {
	f, err := parser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse env file")
	}

	return f, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*File, error) {
	return Parse(strings.NewReader(s))
}

// Load reads and parses the env file at path, returning its variables. Later
// assignments to the same key win, as they do when a shell sources the file.
func Load(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	parsed, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}

	return parsed.Map()
}

// Keys returns the assigned keys in file order, without duplicates.
func (f *File) Keys() []string {
	seen := make(map[string]bool, len(f.Entries))
	keys := make([]string, 0, len(f.Entries))
	for _, e := range f.Entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}

	return keys
}

// Map returns the file's variables with values decoded.
func (f *File) Map() (map[string]string, error) {
	vars := make(map[string]string, len(f.Entries))
	for _, e := range f.Entries {
		v, err := e.String()
		if err != nil {
			return nil, err
		}
		vars[e.Key] = v
	}

	return vars, nil
}

// String returns the entry's decoded value.
func (e *Entry) String() (string, error) {
	if e.Value == nil {
		return "", nil
	}

	switch {
	case e.Value.Quoted != nil:
		return expandEscapes(unwrap(*e.Value.Quoted)), nil
	case e.Value.Literal != nil:
		return unwrap(*e.Value.Literal), nil
	case e.Value.Backtick != nil:
		return unwrap(*e.Value.Backtick), nil
	case e.Value.Raw != nil:
		return strings.TrimRight(*e.Value.Raw, " \t"), nil
	}

	return "", nil
}

func unwrap(quoted string) string {
	return quoted[1 : len(quoted)-1]
}

func expandEscapes(v string) string {
	return strings.NewReplacer(`\n`, "\n", `\r`, "\r").Replace(v)
}

// FormatValue renders v so that both Parse and dotenv read it back unchanged.
//
// Plain values are written as-is. Values that need quoting use single quotes
// when possible, then double quotes with \n and \r escapes, then backticks.
// Use ValidateValue to reject the rare value none of these can carry; such a
// value is written double-quoted and will not read back exactly.
func FormatValue(v string) string {
	if f, ok := quote(v); ok {
		return f
	}

	return `"` + escapeNewlines(v) + `"`
}

// FormatLine renders a single KEY=VALUE line, without the trailing newline.
func FormatLine(key, value string) string {
	return key + "=" + FormatValue(value)
}

// ValidateValue returns an error when v cannot be written to an env file
// without changing its meaning.
func ValidateValue(v string) error {
	if _, ok := quote(v); !ok {
		return errors.New("needs quoting but contains ', \" and ` characters")
	}

	return nil
}

func quote(v string) (string, bool) {
	switch {
	case !needsQuoting(v):
		return v, true
	case !strings.ContainsAny(v, "'\r\n"):
		return "'" + v + "'", true
	case !strings.ContainsAny(v, `"\`):
		return `"` + escapeNewlines(v) + `"`, true
	case !strings.Contains(v, "`"):
		return "`" + v + "`", true
	}

	return "", false
}

func escapeNewlines(v string) string {
	return strings.NewReplacer("\n", `\n`, "\r", `\r`).Replace(v)
}

func needsQuoting(v string) bool {
	if v == "" {
		return false
	}

	switch v[0] {
	case ' ', '\t', '"', '\'', '`':
		return true
	}

	last := v[len(v)-1]
	if last == ' ' || last == '\t' {
		return true
	}

	return strings.ContainsAny(v, "#\r\n")
}
