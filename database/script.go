package database

import (
	"os"
	"strings"

	"github.com/yeremiapane/review-app/utils"
	"gorm.io/gorm"
)

// ExecuteScript runs every ";"-terminated statement of a SQL file inside a
// single transaction. "--" starts a comment outside of quotes, and a ";"
// inside a quoted literal does not end the statement.
func ExecuteScript(db *gorm.DB, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	statements := splitStatements(string(raw))
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				utils.ErrorLogger.Printf("Error executing statement: %v\nStatement: %s", err, stmt)
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	utils.InfoLogger.Printf("Executed %d statements from %s", len(statements), path)
	return len(statements), nil
}

// splitStatements cuts a script on ";" outside of quoted literals and
// identifiers. A doubled quote inside a literal is an escaped quote.
func splitStatements(script string) []string {
	var (
		out   []string
		b     strings.Builder
		quote byte
	)
	flush := func() {
		if stmt := strings.TrimSpace(b.String()); stmt != "" {
			out = append(out, stmt)
		}
		b.Reset()
	}

	for i := 0; i < len(script); i++ {
		ch := script[i]
		if quote != 0 {
			b.WriteByte(ch)
			if ch == quote {
				if i+1 < len(script) && script[i+1] == quote {
					b.WriteByte(script[i+1])
					i++
				} else {
					quote = 0
				}
			}
			continue
		}

		switch {
		case ch == '\'' || ch == '"' || ch == '`':
			quote = ch
			b.WriteByte(ch)
		case ch == '-' && i+1 < len(script) && script[i+1] == '-':
			// comment runs to end of line
			for i < len(script) && script[i] != '\n' {
				i++
			}
			b.WriteByte('\n')
		case ch == ';':
			flush()
		default:
			b.WriteByte(ch)
		}
	}
	flush()
	return out
}
