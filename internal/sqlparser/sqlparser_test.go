package sqlparser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		batch string
		want  []string
	}{
		{
			name:  "empty",
			batch: "",
			want:  nil,
		},
		{
			name:  "single_statement",
			batch: "CREATE TABLE users (id INTEGER PRIMARY KEY);",
			want:  []string{"CREATE TABLE users (id INTEGER PRIMARY KEY);"},
		},
		{
			name:  "trailing_statement_without_semicolon",
			batch: "CREATE TABLE a (id INTEGER);\nINSERT INTO a VALUES (1)",
			want: []string{
				"CREATE TABLE a (id INTEGER);",
				"INSERT INTO a VALUES (1)",
			},
		},
		{
			name: "multiple_statements",
			batch: `CREATE TABLE users (id INTEGER PRIMARY KEY);
ALTER TABLE users ADD COLUMN email TEXT;
INSERT INTO users (email) VALUES ('a@b.c');`,
			want: []string{
				"CREATE TABLE users (id INTEGER PRIMARY KEY);",
				"ALTER TABLE users ADD COLUMN email TEXT;",
				"INSERT INTO users (email) VALUES ('a@b.c');",
			},
		},
		{
			name:  "semicolon_inside_string",
			batch: `INSERT INTO t (v) VALUES ('a;b');INSERT INTO t (v) VALUES ('it''s;fine');`,
			want: []string{
				"INSERT INTO t (v) VALUES ('a;b');",
				"INSERT INTO t (v) VALUES ('it''s;fine');",
			},
		},
		{
			name:  "semicolon_inside_quoted_identifier",
			batch: `CREATE TABLE "we;ird" (id INTEGER);`,
			want:  []string{`CREATE TABLE "we;ird" (id INTEGER);`},
		},
		{
			name: "line_comments_dropped_between_statements",
			batch: `-- schema setup
CREATE TABLE t (id INTEGER);
-- done
`,
			want: []string{"-- schema setup\nCREATE TABLE t (id INTEGER);"},
		},
		{
			name:  "block_comment_with_semicolon",
			batch: "/* not a terminator ; */ CREATE TABLE t (id INTEGER);",
			want:  []string{"/* not a terminator ; */ CREATE TABLE t (id INTEGER);"},
		},
		{
			name:  "comment_only_batch",
			batch: "-- nothing to do\n/* really ; nothing */",
			want:  nil,
		},
		{
			name: "trigger_body_stays_whole",
			batch: `CREATE TABLE logs (msg TEXT);
CREATE TRIGGER users_audit AFTER INSERT ON users
BEGIN
	INSERT INTO logs (msg) VALUES ('inserted');
	INSERT INTO logs (msg) VALUES ('twice');
END;
INSERT INTO logs (msg) VALUES ('after');`,
			want: []string{
				"CREATE TABLE logs (msg TEXT);",
				"CREATE TRIGGER users_audit AFTER INSERT ON users\nBEGIN\n\tINSERT INTO logs (msg) VALUES ('inserted');\n\tINSERT INTO logs (msg) VALUES ('twice');\nEND;",
				"INSERT INTO logs (msg) VALUES ('after');",
			},
		},
		{
			name:  "case_expression",
			batch: `SELECT CASE WHEN x > 0 THEN 'pos' ELSE 'neg' END FROM t;SELECT 1;`,
			want: []string{
				"SELECT CASE WHEN x > 0 THEN 'pos' ELSE 'neg' END FROM t;",
				"SELECT 1;",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Split(tc.batch))
		})
	}
}
