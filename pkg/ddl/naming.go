package ddl

import (
	"strings"

	"github.com/pkg/errors"
)

// NamingStrategy renders a raw identifier (table, column, index, or constraint
// name) into its final string form before it is embedded in a statement.
//
// Strategies must be pure and total: the same input always produces the same
// output, with no side effects, for any string the caller passes. The package
// assumes but does not enforce this; a strategy that panics propagates its
// panic unmodified to the caller. Pure strategies are safe for concurrent use.
type NamingStrategy func(name string) string

// Identity returns the name unchanged. It is the default strategy used
// whenever an options struct carries a nil Entities field.
func Identity(name string) string { return name }

// LowerCase folds the name to lower case.
func LowerCase(name string) string { return strings.ToLower(name) }

// UpperCase folds the name to upper case.
func UpperCase(name string) string { return strings.ToUpper(name) }

// DoubleQuote wraps the name in ANSI double quotes, escaping embedded quote
// characters by doubling them per the SQL standard.
//
// Examples:
//   - "users" -> `"users"`
//   - `say "hi"` -> `"say ""hi"""`
func DoubleQuote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Backtick wraps the name in backticks (MySQL/ClickHouse style), escaping
// embedded backticks by doubling them.
func Backtick(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// Bracket wraps the name in square brackets (SQL Server style). Embedded "]"
// characters are escaped by doubling them; it is always valid to enclose a
// SQL Server identifier in brackets.
func Bracket(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// StrategyNames lists the strategy names recognized by StrategyNamed, in the
// order they should appear in usage text.
var StrategyNames = []string{"identity", "lower", "upper", "double_quote", "backtick", "bracket"}

// StrategyNamed returns the predefined naming strategy registered under name.
// It returns an ErrInvalidArgument wrapped error for unrecognized names.
//
// Recognized names: identity, lower, upper, double_quote, backtick, bracket.
func StrategyNamed(name string) (NamingStrategy, error) {
	switch name {
	case "identity":
		return Identity, nil
	case "lower":
		return LowerCase, nil
	case "upper":
		return UpperCase, nil
	case "double_quote":
		return DoubleQuote, nil
	case "backtick":
		return Backtick, nil
	case "bracket":
		return Bracket, nil
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown naming strategy %q", name)
	}
}
