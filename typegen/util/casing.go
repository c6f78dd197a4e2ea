package util

import (
	"go/token"
	"go/types"
	"strings"
	"unicode"
)

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Handles acronyms properly (e.g., "HTTPSConnection" -> "https_connection")
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if i > 0 && unicode.IsUpper(r) {
			// Keep acronyms together unless the next rune starts a new word
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if !prevUpper || nextLower {
				result.WriteRune('_')
			}
		}

		result.WriteRune(r)
	}

	return strings.ToLower(result.String())
}

// ToPascalCase converts snake_case or kebab-case to PascalCase.
// Segments that are already PascalCase or camelCase keep their inner casing
// ("tool_proficiency" -> "ToolProficiency", "WoodElf" -> "WoodElf").
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}

	return result.String()
}

// ToCamelCase converts snake_case or kebab-case to camelCase
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if len(pascal) == 0 {
		return pascal
	}

	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// JoinCamel joins identifier parts into one camelCase identifier
// ("Sheet", "race", "Elf" -> "sheetRaceElf").
func JoinCamel(parts ...string) string {
	return ToCamelCase(strings.Join(parts, "_"))
}

// IsIdentifier reports whether s is a valid Go identifier
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// IsBlank reports whether s is made of underscores only and so cases to nothing
func IsBlank(s string) bool {
	return s != "" && strings.Trim(s, "_") == ""
}

// IsReserved reports whether s cannot name a declared type in generated code:
// a keyword, a predeclared identifier such as string or error, or a blank name.
func IsReserved(s string) bool {
	return token.IsKeyword(s) || types.Universe.Lookup(s) != nil || IsBlank(s)
}
