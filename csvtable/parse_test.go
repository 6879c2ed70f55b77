package csvtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		separator string
		wantRows  [][]string
		wantErr   bool
	}{
		{name: "empty", text: "", separator: ",", wantRows: [][]string{}},
		{name: "only newlines", text: "\n\n\n", separator: ",", wantRows: [][]string{}},
		{
			name:      "simple",
			text:      "a,b\n1,2\n3,4",
			separator: ",",
			wantRows:  [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}},
		},
		{
			name:      "trailing newline",
			text:      "a,b\n1,2\n",
			separator: ",",
			wantRows:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:      "CRLF",
			text:      "a;b\r\n1;2\r\n",
			separator: ";",
			wantRows:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:      "tab",
			text:      "a\tb\n1,5\t2",
			separator: "\t",
			wantRows:  [][]string{{"a", "b"}, {"1,5", "2"}},
		},
		{
			name:      "multi character separator",
			text:      "a::b\n1::2",
			separator: "::",
			wantRows:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:      "quoted",
			text:      `"a","b"` + "\n" + `"1","2"`,
			separator: ",",
			wantRows:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:      "quoted separator",
			text:      "name,size\n" + `x,"small, medium, large"` + "\n" + `"y,z",1`,
			separator: ",",
			wantRows:  [][]string{{"name", "size"}, {"x", "small, medium, large"}, {"y,z", "1"}},
		},
		{
			name:      "escaped quotes",
			text:      "name,quote\n" + `John,"He said ""Hello"""`,
			separator: ",",
			wantRows:  [][]string{{"name", "quote"}, {"John", `He said "Hello"`}},
		},
		{
			name:      "multi-line field",
			text:      "name,address\n" + `John,"123 Main St` + "\n" + `Apt 4B",x`,
			separator: ",",
			wantRows:  [][]string{{"name", "address"}, {"John", "123 Main St\nApt 4B", "x"}},
		},
		{
			name:      "quoted separator and line break in first column",
			text:      "a,b\n\"x,y\nz\",2",
			separator: ",",
			wantRows:  [][]string{{"a", "b"}, {"x,y\nz", "2"}},
		},
		{
			name:      "quoted separator and line break in last column",
			text:      "a,b\n1,\"x,y\nz\"",
			separator: ",",
			wantRows:  [][]string{{"a", "b"}, {"1", "x,y\nz"}},
		},
		{
			name:      "quoted empty lines",
			text:      "a\n\"x\n\ny\"\n2",
			separator: ",",
			wantRows:  [][]string{{"a"}, {"x\n\ny"}, {"2"}},
		},
		{
			name:      "quoted CRLF",
			text:      "a\r\n\"x\r\ny\"\r\n",
			separator: ",",
			wantRows:  [][]string{{"a"}, {"x\ny"}},
		},
		{
			name:      "mixed line endings",
			text:      "a,b\r\n1,2\n3,4\r\n5,6",
			separator: ",",
			wantRows:  [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}, {"5", "6"}},
		},
		{
			name:      "quotes within unquoted field",
			text:      `a"b,c"` + "\n" + `"x"y,z`,
			separator: ",",
			wantRows:  [][]string{{`a"b`, `c"`}, {"xy", "z"}},
		},
		{
			name:      "cell text is kept",
			text:      "a,b,c\n1\u00a0000,\xff,\uFFFD",
			separator: ",",
			wantRows:  [][]string{{"a", "b", "c"}, {"1\u00a0000", "\xff", "\uFFFD"}},
		},
		{
			name:      "UTF-8 BOM",
			text:      "\xEF\xBB\xBFa,b\n1,2",
			separator: ",",
			wantRows:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:      "sep header",
			text:      "sep=;\na;b\n1;2",
			separator: ";",
			wantRows:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:      "sep header mismatch",
			text:      "sep=;\na,b\n1,2",
			separator: ",",
			wantErr:   true,
		},
		{
			name:      "unbalanced quotes",
			text:      "a\n" + `"x""`,
			separator: ",",
			wantErr:   true,
		},
		{
			name:      "unclosed multi-line quote",
			text:      "a,b\n\"x,y\nz",
			separator: ",",
			wantErr:   true,
		},
		{
			name:      "empty separator",
			text:      "a,b",
			separator: "",
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseString(tt.text, tt.separator)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestParseWithFormat_KeepsLineIndices(t *testing.T) {
	rows, err := ParseWithFormat([]byte("a,b\n\n1,\"x\ny\"\n2,3"), &Format{Encoding: "UTF-8", Separator: ",", Newline: "\n"})
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b"}, nil, {"1", "x\ny"}, nil, {"2", "3"}}, rows)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		csv         string
		wantSep     string
		wantNewline string
	}{
		{name: "comma", csv: "a,b,c\n1,2,3", wantSep: ",", wantNewline: "\n"},
		{name: "semicolon CRLF", csv: "a;b;c\r\n1;2;3\r\n", wantSep: ";", wantNewline: "\r\n"},
		{name: "tab", csv: "a\tb\n1\t2,5", wantSep: "\t", wantNewline: "\n"},
		{name: "sep header", csv: "sep=|\na|b", wantSep: "|", wantNewline: "\n"},
		{name: "tie uses comma", csv: "a;b,c", wantSep: ",", wantNewline: "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := DetectFormat([]byte(tt.csv), nil)
			require.NoError(t, err)
			require.Equal(t, tt.wantSep, format.Separator, "separator")
			require.Equal(t, tt.wantNewline, format.Newline, "newline")
			require.NotEmpty(t, format.Encoding, "encoding")
		})
	}
}

func TestParseDetectFormat(t *testing.T) {
	rows, format, err := ParseDetectFormat([]byte("Name;Age\r\nJohn;30\r\nJane;25"), nil)
	require.NoError(t, err)
	require.Equal(t, ";", format.Separator)
	require.Equal(t, "\r\n", format.Newline)
	require.Equal(t, [][]string{{"Name", "Age"}, {"John", "30"}, {"Jane", "25"}}, rows)
}

func TestParseDetectFormat_MixedLineEndings(t *testing.T) {
	rows, format, err := ParseDetectFormat([]byte("Name;Note\r\nJohn;\"a;b\r\nc\"\nJane;x\r\n"), nil)
	require.NoError(t, err)
	require.Equal(t, ";", format.Separator)
	require.Equal(t, [][]string{{"Name", "Note"}, {"John", "a;b\nc"}, {"Jane", "x"}}, RemoveEmptyRows(rows))
}

func TestRemoveEmptyRows(t *testing.T) {
	rows := RemoveEmptyRows([][]string{nil, {"a"}, {}, {"", ""}, {"", "b"}})
	require.Equal(t, [][]string{{"a"}, {"", "b"}}, rows)
}

func TestFormat_Validate(t *testing.T) {
	require.Error(t, (*Format)(nil).Validate())
	require.Error(t, (&Format{Separator: ",", Newline: "\n"}).Validate())
	require.Error(t, (&Format{Encoding: "UTF-8", Newline: "\n"}).Validate())
	require.Error(t, (&Format{Encoding: "UTF-8", Separator: ","}).Validate())
	require.Error(t, (&Format{Encoding: "UTF-8", Separator: ",", Newline: "\r"}).Validate())
	require.NoError(t, (&Format{Encoding: "UTF-8", Separator: "||", Newline: "\n"}).Validate())
	require.NoError(t, NewFormat("\t").Validate())
}
