// Command validate provides a small CLI that validates word list JSON
// files in the ../words directory (or the directory given as the first
// argument). It checks:
//   - JSON structure and required fields
//   - Category name presence
//   - At least one word per category
//   - Every word strictly uppercase A-Z (no spaces, digits, or accents)
//   - No duplicate words within a category
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wordgrid/hangman-server/game/words"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateListFile loads and validates a single word list JSON file. Unlike
// the loader used at server startup, it accumulates every problem it finds
// instead of stopping at the first one.
func validateListFile(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var list words.List
	if err := json.Unmarshal(data, &list); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if list.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing category name")
	}

	if len(list.Words) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Category has no words")
	}

	shortest := -1
	longest := 0
	seen := map[string]int{}
	for i, word := range list.Words {
		if !uppercaseOnly(word) {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Word %d (%q) must be uppercase A-Z", i+1, word))
			continue
		}
		if prev, dup := seen[word]; dup {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Duplicate word %q at positions %d and %d", word, prev+1, i+1))
		}
		seen[word] = i

		if shortest == -1 || len(word) < shortest {
			shortest = len(word)
		}
		if len(word) > longest {
			longest = len(word)
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Category: %s", list.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Words: %d", len(list.Words)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Word length: %d-%d", shortest, longest))
	}

	return result
}

// uppercaseOnly reports whether word is non-empty and strictly uppercase A-Z
func uppercaseOnly(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// main scans the word list directory for *.json files and validates each
// one, printing a concise report and exiting with non-zero status if any
// are invalid.
func main() {
	wordDir := "../words"
	if len(os.Args) > 1 {
		wordDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(wordDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding word list files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Printf("No word list files found in %s\n", wordDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateListFile(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All word lists are valid!")
	} else {
		fmt.Println("❌ Some word lists have errors")
		os.Exit(1)
	}
}
