// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestCompile(t *testing.T) {
	type args struct {
		source string
		opts   []Option
	}
	tests := []struct {
		name string
		args args
		want LexicalOperations
	}{
		{
			name: "empty",
			args: args{source: ""},
			want: LexicalOperations{},
		},
		{
			name: "identifier & slicers",
			args: args{source: ".metadata[1,2,4-6,hello]"},
			want: LexicalOperations{
				Identifier("metadata"),
				Generic{Index: GenericSlice{Index(1), Index(2), Slice{From: 4, To: 6}, Ident("hello")}},
			},
		},
		{
			name: "escaped generic separator",
			args: args{source: `.metadata[1,2\,,4-6,hello]`},
			want: LexicalOperations{
				Identifier("metadata"),
				Generic{Index: GenericSlice{Index(1), Ident("2,"), Slice{From: 4, To: 6}, Ident("hello")}},
			},
		},
		{
			name: "escaped separator",
			args: args{source: `.meta\.data[1,2,4-6,hello]`},
			want: LexicalOperations{
				Identifier("meta.data"),
				Generic{Index: GenericSlice{Index(1), Index(2), Slice{From: 4, To: 6}, Ident("hello")}},
			},
		},
		{
			name: "wildcard",
			args: args{source: ".a[]"},
			want: LexicalOperations{Identifier("a"), Generic{Index: Wildcard{}}},
		},
		{
			name: "trailing identifier dropped",
			args: args{source: ".a.b"},
			want: LexicalOperations{Identifier("a")},
		},
		{
			name: "trailing identifier flushed",
			args: args{source: ".a.b", opts: []Option{WithTrailingIdentifier(true)}},
			want: LexicalOperations{Identifier("a"), Identifier("b")},
		},
		{
			name: "trailing separator",
			args: args{source: ".a.b."},
			want: LexicalOperations{Identifier("a"), Identifier("b")},
		},
		{
			name: "collapsed separators",
			args: args{source: "..a...[0]"},
			want: LexicalOperations{Identifier("a"), Generic{Index: GenericSlice{Index(0)}}},
		},
		{
			name: "dropped whitespace",
			args: args{source: ". a b ."},
			want: LexicalOperations{Identifier("ab")},
		},
		{
			name: "escaped whitespace",
			args: args{source: `.a\ b.`},
			want: LexicalOperations{Identifier("a b")},
		},
		{
			name: "escaped generic start",
			args: args{source: `.a\[0].`},
			want: LexicalOperations{Identifier("a[0]")},
		},
		{
			name: "escaped escape",
			args: args{source: `.a\\.`},
			want: LexicalOperations{Identifier(`a\`)},
		},
		{
			name: "consecutive generics",
			args: args{source: ".a[0][1]"},
			want: LexicalOperations{
				Identifier("a"),
				Generic{Index: GenericSlice{Index(0)}},
				Generic{Index: GenericSlice{Index(1)}},
			},
		},
		{
			name: "leading generic",
			args: args{source: "[x].y."},
			want: LexicalOperations{Generic{Index: GenericSlice{Ident("x")}}, Identifier("y")},
		},
		{
			name: "unicode identifier",
			args: args{source: ".métadonnées[clé]"},
			want: LexicalOperations{Identifier("métadonnées"), Generic{Index: GenericSlice{Ident("clé")}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.args.source, tt.args.opts...)
			if err != nil {
				t.Errorf("Compile() error = %v", err)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compile() = %s, want %s", spew.Sdump(got), spew.Sdump(tt.want))
			}
		})
	}
}

func TestCompile_errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    error
		wantErr error
	}{
		{
			name:    "unterminated generic",
			source:  ".a[",
			want:    &EndOfQueryError{Expected: "]", CharPointer: 3},
			wantErr: ErrEndOfQuery,
		},
		{
			name:    "unterminated range",
			source:  ".a[1-2",
			want:    &EndOfQueryError{Expected: "]", CharPointer: 6},
			wantErr: ErrEndOfQuery,
		},
		{
			name:    "dangling escape",
			source:  `.a[1\`,
			want:    &EndOfQueryError{Expected: "]", CharPointer: 5},
			wantErr: ErrEndOfQuery,
		},
		{
			name:    "leading generic separator",
			source:  ".a[,1]",
			want:    &UnexpectedCharacterError{Expected: "Integer/String", Found: ",", CharPointer: 4, Lex: "1]"},
			wantErr: ErrUnexpectedCharacter,
		},
		{
			name:    "leading range marker",
			source:  ".a[-1]",
			want:    &UnexpectedCharacterError{Expected: "Integer/String", Found: "-", CharPointer: 4, Lex: "1]"},
			wantErr: ErrUnexpectedCharacter,
		},
		{
			name:    "string range start",
			source:  ".a[x-1].b",
			want:    &UnexpectedCharacterError{Expected: "Integer", Found: "String", CharPointer: 5, Lex: "1].b"},
			wantErr: ErrUnexpectedCharacter,
		},
		{
			name:    "separator after range start",
			source:  ".a[1-,2]",
			want:    &UnexpectedCharacterError{Expected: "Integer/String", Found: ",", CharPointer: 6, Lex: "2]"},
			wantErr: ErrUnexpectedCharacter,
		},
		{
			name:    "range marker after range start",
			source:  ".a[1--2]",
			want:    &UnexpectedCharacterError{Expected: "Integer/String", Found: "-", CharPointer: 6, Lex: "2]"},
			wantErr: ErrUnexpectedCharacter,
		},
		{
			name:    "error in later generic",
			source:  ".a[0].b[,]",
			want:    &UnexpectedCharacterError{Expected: "Integer/String", Found: ",", CharPointer: 9, Lex: "]"},
			wantErr: ErrUnexpectedCharacter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.source)
			if got != nil {
				t.Errorf("Compile() = %v, want nil", got)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(err, tt.want) {
				t.Errorf("Compile() error = %s, want %s", spew.Sdump(err), spew.Sdump(tt.want))
			}
		})
	}
}

func TestCompile_parseIntErrors(t *testing.T) {
	for _, source := range []string{".a[1-]", ".a[1-x]", ".a[0,3-]", ".a[0,3-,4]"} {
		t.Run(source, func(t *testing.T) {
			_, err := Compile(source)

			var pErr *FailedToParseIntError
			if !errors.As(err, &pErr) {
				t.Errorf("Compile() error = %v, want %T", err, pErr)
				return
			}
			if !errors.Is(err, ErrFailedToParseInt) {
				t.Errorf("Compile() error = %v, wantErr %v", err, ErrFailedToParseInt)
			}
		})
	}
}

func TestCompile_idempotent(t *testing.T) {
	sources := []string{"", ".metadata[1,2,4-6,hello]", `.meta\.data[]`, ".a[", ".a[,1]", ".a[1-]"}

	for _, source := range sources {
		first, firstErr := Compile(source)
		second, secondErr := Compile(source)

		if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(firstErr, secondErr) {
			t.Errorf("Compile(%q) = (%v, %v), then (%v, %v)", source, first, firstErr, second, secondErr)
		}
	}
}

func TestLexer_debug(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	if _, err := New(".a[1].b", WithLogger(logger)).Lex(); err != nil {
		t.Fatalf("Lexer.Lex() error = %v", err)
	}
	if entries := hook.AllEntries(); len(entries) > 0 {
		t.Errorf("Lexer.Lex() logged %d entries without debug", len(entries))
	}

	l := New(".a[1].b", WithLogger(logger), WithDebug(true))
	if l.Logger() != logger {
		t.Errorf("Lexer.Logger() = %v, want %v", l.Logger(), logger)
	}
	if _, err := l.Lex(); err != nil {
		t.Fatalf("Lexer.Lex() error = %v", err)
	}

	var emitted, discarded int
	for _, entry := range hook.AllEntries() {
		switch {
		case strings.HasPrefix(entry.Message, "lexer emit"):
			emitted++
		case strings.HasPrefix(entry.Message, "lexer discarding"):
			discarded++
		}
	}
	if emitted != 2 || discarded != 1 {
		t.Errorf("Lexer.Lex() emitted %d & discarded %d debug entries, want 2 & 1", emitted, discarded)
	}
}

func BenchmarkLexer_Lex(b *testing.B) {
	src := ".metadata.annotations[1,2,4-6,hello].spec[]."

	logger := logrus.New()

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := New(src, WithLogger(logger)).Lex(); err != nil {
			b.Fatal(err)
		}
	}
}
